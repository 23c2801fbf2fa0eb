package ledgerrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"partshub/internal/domain"
	"partshub/internal/errors"
	"partshub/internal/pkg/logger"
)

// LedgerRepository arquiva no PostgreSQL os registros que o store mantém em memória.
// O store continua sendo a fonte da verdade; o arquivo é só para consulta posterior.
type LedgerRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewLedgerRepository cria e retorna uma nova instância do repositório.
func NewLedgerRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *LedgerRepository {
	return &LedgerRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

// ArchiveSales grava as vendas em uma única transação. IDs repetidos são sobrescritos.
func (r *LedgerRepository) ArchiveSales(ctx context.Context, records []domain.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}
	r.logger.Debug("Iniciando ArchiveSales no repositório.", map[string]interface{}{"records": len(records)})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		return errors.NewDBError("Falha ao iniciar transação de vendas", err)
	}
	defer tx.Rollback()

	query := `
        INSERT INTO sales_records (id, sale_date, part_name, sku, amount, status, customer)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (id) DO UPDATE
        SET sale_date = EXCLUDED.sale_date, part_name = EXCLUDED.part_name, sku = EXCLUDED.sku,
            amount = EXCLUDED.amount, status = EXCLUDED.status, customer = EXCLUDED.customer,
            archived_at = NOW()`

	for _, rec := range records {
		if _, err := tx.ExecContext(ctxTimeout, query,
			rec.ID, rec.Date, rec.PartName, rec.SKU, rec.Amount, string(rec.Status), rec.Customer,
		); err != nil {
			r.logger.Error("Falha ao arquivar venda no DB.", err)
			return errors.NewDBError("Falha ao arquivar venda", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewDBError("Falha ao confirmar transação de vendas", err)
	}

	r.logger.Info("Vendas arquivadas com sucesso.", map[string]interface{}{"records": len(records)})
	return nil
}

// ArchiveWarehouseOrder grava o pedido de reposição e sua fatura juntos.
func (r *LedgerRepository) ArchiveWarehouseOrder(ctx context.Context, order domain.WarehouseOrder, invoice domain.Invoice) error {
	r.logger.Debug("Iniciando ArchiveWarehouseOrder no repositório.", map[string]interface{}{"order_id": order.ID, "invoice_id": invoice.ID})

	items, err := json.Marshal(order.Items)
	if err != nil {
		return errors.NewInternalError("Falha ao serializar itens do pedido", err)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		return errors.NewDBError("Falha ao iniciar transação do pedido", err)
	}
	defer tx.Rollback()

	orderQuery := `
        INSERT INTO warehouse_orders (id, order_date, total, status, items)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (id) DO UPDATE
        SET order_date = EXCLUDED.order_date, total = EXCLUDED.total, status = EXCLUDED.status,
            items = EXCLUDED.items, archived_at = NOW()`

	if _, err := tx.ExecContext(ctxTimeout, orderQuery,
		order.ID, order.Date, order.Total, string(order.Status), items,
	); err != nil {
		r.logger.Error("Falha ao arquivar pedido de reposição no DB.", err)
		return errors.NewDBError("Falha ao arquivar pedido de reposição", err)
	}

	if err := upsertInvoice(ctxTimeout, tx, invoice); err != nil {
		r.logger.Error("Falha ao arquivar fatura no DB.", err)
		return errors.NewDBError("Falha ao arquivar fatura", err)
	}

	if err := tx.Commit(); err != nil {
		return errors.NewDBError("Falha ao confirmar transação do pedido", err)
	}

	r.logger.Info("Pedido de reposição arquivado.", map[string]interface{}{"order_id": order.ID, "total": order.Total})
	return nil
}

// ArchiveInvoicePayment registra o pagamento. Faturas do histórico inicial que
// nunca passaram pelo arquivo são inseridas aqui.
func (r *LedgerRepository) ArchiveInvoicePayment(ctx context.Context, invoice domain.Invoice) error {
	r.logger.Debug("Iniciando ArchiveInvoicePayment no repositório.", map[string]interface{}{"invoice_id": invoice.ID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if err := upsertInvoice(ctxTimeout, r.DB, invoice); err != nil {
		r.logger.Error("Falha ao registrar pagamento no DB.", err)
		return errors.NewDBError("Falha ao registrar pagamento", err)
	}

	r.logger.Info("Pagamento de fatura arquivado.", map[string]interface{}{"invoice_id": invoice.ID})
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func upsertInvoice(ctx context.Context, db execer, invoice domain.Invoice) error {
	query := `
        INSERT INTO invoices (id, order_id, invoice_date, amount, due_date, status, paid_at)
        VALUES ($1, $2, $3, $4, $5, $6, CASE WHEN $6 = 'paid' THEN NOW() END)
        ON CONFLICT (id) DO UPDATE
        SET status = EXCLUDED.status,
            paid_at = COALESCE(invoices.paid_at, EXCLUDED.paid_at),
            archived_at = NOW()`

	_, err := db.ExecContext(ctx, query,
		invoice.ID, invoice.OrderID, invoice.Date, invoice.Amount, invoice.DueDate, string(invoice.Status),
	)
	return err
}

// NopRepository é usado quando DATABASE_URL está vazio.
type NopRepository struct{}

func (NopRepository) ArchiveSales(context.Context, []domain.SalesRecord) error { return nil }
func (NopRepository) ArchiveWarehouseOrder(context.Context, domain.WarehouseOrder, domain.Invoice) error {
	return nil
}
func (NopRepository) ArchiveInvoicePayment(context.Context, domain.Invoice) error { return nil }
