package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"partshub/internal/pkg/logger"
)

// Reporter é o serviço que o agendador aciona.
type Reporter interface {
	LogDailySummary(ctx context.Context) error
}

// Scheduler executa as tarefas periódicas do serviço.
type Scheduler struct {
	cron     *cron.Cron
	reporter Reporter
	schedule string
	logger   logger.Logger
}

// NewScheduler cria o agendador. schedule é uma expressão cron de 5 campos.
func NewScheduler(schedule string, reporter Reporter, logger logger.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		reporter: reporter,
		schedule: schedule,
		logger:   logger,
	}
}

// Start registra as tarefas e inicia o cron. Expressão inválida é erro.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runDailySummary); err != nil {
		return fmt.Errorf("expressão cron inválida %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.logger.Info("Agendador iniciado.", map[string]interface{}{"report_schedule": s.schedule})
	return nil
}

// Stop para o cron e espera a tarefa em andamento terminar.
func (s *Scheduler) Stop(ctx context.Context) {
	s.logger.Info("Parando agendador.", nil)
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("Agendador não terminou a tempo.", nil)
	}
}

func (s *Scheduler) runDailySummary() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.reporter.LogDailySummary(ctx); err != nil {
		s.logger.Error("Falha ao gerar resumo agendado.", err)
	}
}
