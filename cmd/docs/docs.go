// Package docs holds the Swagger 2.0 document served under /swagger outside production.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/accounts": {
            "get": {
                "description": "Retrieves every account ordered by id",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "List accounts",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.AccountResponse"}}},
                    "500": {"description": "Failed to list accounts", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Opens an account in one currency with a non-negative opening balance",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Create a new account",
                "parameters": [
                    {"description": "Account details", "name": "account", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateAccountRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.AccountResponse"}},
                    "400": {"description": "Invalid input format or validation error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Failed to create account", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/accounts/{accountID}": {
            "get": {
                "description": "Retrieves an account with its current committed balance",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Get an account by ID",
                "parameters": [
                    {"type": "integer", "description": "Account ID", "name": "accountID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AccountResponse"}},
                    "400": {"description": "Invalid account ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Failed to retrieve account", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/accounts/{accountID}/transfers": {
            "get": {
                "description": "Retrieves the transfers an account sent or received, in the order they were executed",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "List transfers of an account",
                "parameters": [
                    {"type": "integer", "description": "Account ID", "name": "accountID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.TransferResponse"}}},
                    "400": {"description": "Invalid account ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Failed to list transfers", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/accounts/{accountID}/transfers/{transferID}": {
            "get": {
                "description": "Retrieves a transfer the account took part in",
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Get a transfer of an account",
                "parameters": [
                    {"type": "integer", "description": "Account ID", "name": "accountID", "in": "path", "required": true},
                    {"type": "integer", "description": "Transfer ID", "name": "transferID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TransferResponse"}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Transfer not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Failed to retrieve transfer", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/transfers": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Atomically moves an amount between two accounts of the same currency.\nThe request is not idempotent: resubmitting after a timeout may execute it twice.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["transfers"],
                "summary": "Execute a transfer",
                "parameters": [
                    {"description": "Transfer details", "name": "transfer", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateTransferRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.TransferResponse"}},
                    "400": {"description": "Invalid amount, same account, or currency mismatch", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Account not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Aborted by a concurrent update", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Insufficient funds", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Failed to execute transfer", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.AccountResponse": {
            "type": "object",
            "properties": {
                "balance": {"type": "string", "example": "100.21"},
                "currency": {"type": "string", "example": "USD"},
                "id": {"type": "integer"},
                "owner": {"type": "string"}
            }
        },
        "dto.CreateAccountRequest": {
            "type": "object",
            "required": ["currency", "owner"],
            "properties": {
                "balance": {"type": "string", "example": "100.21"},
                "currency": {"type": "string"},
                "owner": {"type": "string", "maxLength": 50}
            }
        },
        "dto.CreateTransferRequest": {
            "type": "object",
            "required": ["amount", "currency", "fromAccountID", "toAccountID"],
            "properties": {
                "amount": {"type": "string", "example": "10.12"},
                "currency": {"type": "string", "example": "USD"},
                "fromAccountID": {"type": "integer"},
                "toAccountID": {"type": "integer"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "kind": {"type": "string"}
            }
        },
        "dto.TransferResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "string", "example": "10.12"},
                "currency": {"type": "string", "example": "USD"},
                "fromAccountID": {"type": "integer"},
                "id": {"type": "integer"},
                "timestamp": {"type": "string"},
                "toAccountID": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Money Transfer API",
	Description:      "Accounts and atomic same-currency transfers between them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
