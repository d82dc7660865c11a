// Package docs holds the OpenAPI description served under /swagger.
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
        "/translations": {
            "get": {
                "description": "Summaries of every stored translation, most recently updated first",
                "produces": ["application/json"],
                "tags": ["translations"],
                "summary": "List translations",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.translationSummaryResponse"}}}
                }
            },
            "post": {
                "description": "Splits text into sentences unless an explicit list is given, and opens the result",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["translations"],
                "summary": "Create translation",
                "parameters": [
                    {"description": "Source text", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createTranslationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.translationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/translations/current": {
            "get": {
                "produces": ["application/json"],
                "tags": ["translations"],
                "summary": "Open translation",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.translationResponse"}},
                    "204": {"description": "No translation is open"}
                }
            }
        },
        "/translations/{id}/open": {
            "post": {
                "produces": ["application/json"],
                "tags": ["translations"],
                "summary": "Open translation by id",
                "parameters": [
                    {"type": "string", "description": "Translation id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.translationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/translations/current/sentences/{sid}": {
            "put": {
                "description": "Sets the english or dutch text and drops the sentence's cached review",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sentences"],
                "summary": "Edit a sentence",
                "parameters": [
                    {"type": "integer", "description": "Sentence id", "name": "sid", "in": "path", "required": true},
                    {"description": "Field and value", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateSentenceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.translationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/review/request": {
            "post": {
                "description": "Fetches a critique for the sentence under review unless one is cached.\nA missing key or failed call still returns the session state with its error.",
                "produces": ["application/json"],
                "tags": ["review"],
                "summary": "Request AI review",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.reviewStateResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "412": {"description": "Precondition Failed", "schema": {"$ref": "#/definitions/handler.reviewStateResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.reviewStateResponse"}}
                }
            }
        },
        "/settings": {
            "get": {
                "description": "The API key is returned masked",
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Get settings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.settingsResponse"}}
                }
            },
            "put": {
                "description": "Omitted fields are unchanged. Sending the masked key back keeps the stored key; an empty key clears it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Update settings",
                "parameters": [
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.settingsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.settingsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/ai/validate": {
            "post": {
                "description": "Checks the given key, or the stored one when empty or masked. Rejections are reported in the body.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ai"],
                "summary": "Validate API key",
                "parameters": [
                    {"description": "Key to check", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/handler.validateKeyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ai.Result"}},
                    "412": {"description": "Precondition Failed", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/ai/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ai"],
                "summary": "Generate practice text",
                "parameters": [
                    {"description": "Topic prompt", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.generateTextRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ai.Result"}},
                    "412": {"description": "Precondition Failed", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/events": {
            "get": {
                "description": "Server-Sent Events. Sends a snapshot on connect, then translations, current and review events as state changes.",
                "produces": ["text/event-stream"],
                "tags": ["events"],
                "summary": "State-change stream",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "ai.Result": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.createTranslationRequest": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "sentences": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.updateSentenceRequest": {
            "type": "object",
            "properties": {
                "field": {"type": "string", "enum": ["english", "dutch"]},
                "value": {"type": "string"}
            }
        },
        "handler.validateKeyRequest": {
            "type": "object",
            "properties": {"apiKey": {"type": "string"}}
        },
        "handler.generateTextRequest": {
            "type": "object",
            "properties": {"prompt": {"type": "string"}}
        },
        "handler.reviewResponse": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "html": {"type": "string"},
                "generatedAt": {"type": "string"}
            }
        },
        "handler.sentenceResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "english": {"type": "string"},
                "dutch": {"type": "string"},
                "aiReview": {"$ref": "#/definitions/handler.reviewResponse"}
            }
        },
        "handler.translationResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "originalText": {"type": "string"},
                "sentences": {"type": "array", "items": {"$ref": "#/definitions/handler.sentenceResponse"}},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "handler.translationSummaryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "sentenceCount": {"type": "integer"},
                "translatedCount": {"type": "integer"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "handler.reviewStateResponse": {
            "type": "object",
            "properties": {
                "open": {"type": "boolean"},
                "translationId": {"type": "string"},
                "sentenceId": {"type": "integer"},
                "loading": {"type": "boolean"},
                "error": {"type": "string"},
                "review": {"$ref": "#/definitions/handler.reviewResponse"}
            }
        },
        "handler.settingsRequest": {
            "type": "object",
            "properties": {
                "apiKey": {"type": "string"},
                "theme": {"type": "string", "enum": ["light", "dark"]},
                "maxTextLength": {"type": "integer"},
                "hidePopupWarning": {"type": "boolean"}
            }
        },
        "handler.settingsResponse": {
            "type": "object",
            "properties": {
                "apiKey": {"type": "string"},
                "hasApiKey": {"type": "boolean"},
                "theme": {"type": "string"},
                "maxTextLength": {"type": "integer"},
                "hidePopupWarning": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Dutch Ghostwriter API",
	Description:      "Sentence-by-sentence English to Dutch translation practice with AI review.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
