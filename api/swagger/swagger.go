package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Workshop Statistics API",
        "description": "Workshop statistics filters and workshop proposals",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Workshop Types", "description": "Filter choice lists"},
        {"name": "Statistics", "description": "Accepted workshop listings and counts"},
        {"name": "Proposals", "description": "Coordinator workshop proposals"}
    ],
    "paths": {
        "/workshop-types": {
            "get": {
                "tags": ["Workshop Types"],
                "summary": "List workshop types",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/workshop-types/{id}": {
            "get": {
                "tags": ["Workshop Types"],
                "summary": "Get a workshop type with its terms and conditions",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/states": {
            "get": {
                "tags": ["Workshop Types"],
                "summary": "List state codes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/statistics/workshops": {
            "get": {
                "tags": ["Statistics"],
                "summary": "List accepted workshops",
                "parameters": [
                    {"name": "from_date", "in": "query", "type": "string", "format": "date"},
                    {"name": "to_date", "in": "query", "type": "string", "format": "date"},
                    {"name": "workshop_type", "in": "query", "type": "string"},
                    {"name": "state", "in": "query", "type": "string"},
                    {"name": "show_workshops", "in": "query", "type": "boolean"},
                    {"name": "sort", "in": "query", "type": "string", "enum": ["date", "-date"]},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Field errors", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "show_workshops without a signed-in user", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/statistics/workshops/summary": {
            "get": {
                "tags": ["Statistics"],
                "summary": "Count accepted workshops per state and type",
                "parameters": [
                    {"name": "from_date", "in": "query", "type": "string", "format": "date"},
                    {"name": "to_date", "in": "query", "type": "string", "format": "date"},
                    {"name": "workshop_type", "in": "query", "type": "string"},
                    {"name": "state", "in": "query", "type": "string"},
                    {"name": "show_workshops", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/statistics/workshops/export": {
            "get": {
                "tags": ["Statistics"],
                "summary": "Export accepted workshops",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Document"},
                    "404": {"description": "Exports disabled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/workshops/proposals/window": {
            "get": {
                "tags": ["Proposals"],
                "summary": "Date range a proposal may target today",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/workshops/proposals": {
            "post": {
                "tags": ["Proposals"],
                "summary": "Propose a workshop",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ProposalRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Field errors", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Not a coordinator", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Rejected date or terms", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "ProposalRequest": {
            "type": "object",
            "required": ["workshop_type_id", "date"],
            "properties": {
                "workshop_type_id": {"type": "string", "format": "uuid"},
                "date": {"type": "string", "format": "date"},
                "tnc_accepted": {"type": "boolean"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "details": {"type": "object"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
