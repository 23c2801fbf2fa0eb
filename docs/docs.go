// Package docs registra o documento OpenAPI servido em /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{.Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/session": {
            "get": {"tags": ["session"], "summary": "Papel ativo", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["session"], "summary": "Escolhe o papel (retailer, garage, wholesaler)",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"name": "session", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.SessionRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}
            },
            "delete": {"tags": ["session"], "summary": "Volta à escolha de papel", "responses": {"204": {"description": "No Content"}}}
        },
        "/theme": {
            "get": {"tags": ["session"], "summary": "Tema atual", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["session"], "summary": "Define o tema", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}}
        },
        "/theme/toggle": {
            "post": {"tags": ["session"], "summary": "Alterna entre claro e escuro", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/parts": {
            "get": {
                "tags": ["catalog"], "summary": "Busca peças no catálogo", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "name": "vehicle", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/parts/{id}": {
            "get": {"tags": ["catalog"], "summary": "Obtém uma peça", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}}
        },
        "/parts/{id}/stock": {
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["catalog"], "summary": "Ajusta o estoque de armazém", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}}
        },
        "/vehicles": {"get": {"tags": ["catalog"], "summary": "Lista veículos", "responses": {"200": {"description": "OK"}}}},
        "/vehicles/compatible-parts": {
            "get": {"tags": ["catalog"], "summary": "Peças compatíveis com um veículo", "parameters": [{"type": "string", "name": "make", "in": "query", "required": true}, {"type": "string", "name": "model", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/retailers": {"get": {"tags": ["retailers"], "summary": "Lista lojas por distância", "responses": {"200": {"description": "OK"}}}},
        "/retailers/{id}": {"get": {"tags": ["retailers"], "summary": "Obtém uma loja", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/retailers/{id}/inventory": {"get": {"tags": ["retailers"], "summary": "Estoque da loja com dados do catálogo", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/cart": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["cart"], "summary": "Mostra o carrinho", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"ApiKeyAuth": []}], "tags": ["cart"], "summary": "Esvazia o carrinho", "responses": {"204": {"description": "No Content"}}}
        },
        "/cart/items": {
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["cart"], "summary": "Adiciona uma peça ao carrinho", "parameters": [{"name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.ItemRequest"}}], "responses": {"200": {"description": "OK"}}}
        },
        "/cart/items/{partID}": {
            "delete": {"security": [{"ApiKeyAuth": []}], "tags": ["cart"], "summary": "Remove uma peça do carrinho", "parameters": [{"type": "string", "name": "partID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/orders": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["orders"], "summary": "Lista pedidos", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["orders"], "summary": "Fecha o carrinho como pedido", "responses": {"201": {"description": "Created"}}}
        },
        "/darkstore-orders": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["orders"], "summary": "Lista pedidos darkstore", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["orders"], "summary": "Pedido de entrega rápida", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}}
        },
        "/warehouse-orders": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["orders"], "summary": "Lista pedidos de reposição", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["orders"], "summary": "Pedido de reposição com fatura", "responses": {"201": {"description": "Created"}}}
        },
        "/sales": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["sales"], "summary": "Lista vendas", "parameters": [{"type": "string", "name": "status", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["sales"], "summary": "Registra uma venda no balcão", "responses": {"201": {"description": "Created"}}}
        },
        "/sales/records": {
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["sales"], "summary": "Lança uma venda manual no ledger", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}}
        },
        "/invoices": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["invoices"], "summary": "Lista faturas", "parameters": [{"type": "string", "name": "status", "in": "query"}], "responses": {"200": {"description": "OK"}}}
        },
        "/invoices/{id}/pay": {
            "post": {"security": [{"ApiKeyAuth": []}], "tags": ["invoices"], "summary": "Paga uma fatura", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}}}
        },
        "/reports/retailer": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["reports"], "summary": "Painel do lojista", "responses": {"200": {"description": "OK"}}}},
        "/reports/wholesaler": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["reports"], "summary": "Painel do atacadista", "responses": {"200": {"description": "OK"}}}}
    },
    "definitions": {
        "domain.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "category": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "domain.ItemRequest": {
            "type": "object",
            "properties": {
                "part_id": {"type": "string"},
                "quantity": {"type": "integer"}
            }
        },
        "domain.SessionRequest": {
            "type": "object",
            "properties": {
                "role": {"type": "string", "enum": ["retailer", "garage", "wholesaler"]}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "PartsHub API",
	Description:      "Estado da demo de autopeças: carrinho, pedidos, vendas e faturas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
