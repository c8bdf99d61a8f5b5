// Package docs holds the OpenAPI description served at /swagger.
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
        "/api/v1/utterances": {
            "post": {
                "description": "Runs one assistant turn for the text and returns what was done.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Submit an utterance",
                "parameters": [
                    {
                        "description": "Utterance",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.submitReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.submitResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Assistant is exiting", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Assistant not running", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/transcript": {
            "get": {
                "description": "Returns the conversation transcript, oldest first.",
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Get the transcript",
                "parameters": [
                    {"type": "integer", "description": "Only the last N entries", "name": "last", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.transcriptResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/status": {
            "get": {
                "description": "Returns the current assistant status (Available, Thinking, Searching, Answering, Exiting).",
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Get assistant status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.statusResp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the assistant accepts utterances",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Assistant is exiting", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "http.entryResp": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "id": {"type": "string"},
                "role": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "http.intentResp": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "payload": {"type": "string"}
            }
        },
        "http.statusResp": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        },
        "http.submitReq": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string", "maxLength": 2000}
            }
        },
        "http.submitResp": {
            "type": "object",
            "properties": {
                "answer": {"type": "string"},
                "automation_failures": {"type": "integer"},
                "automation_handled": {"type": "boolean"},
                "classify_error": {"type": "string"},
                "exiting": {"type": "boolean"},
                "image_requested": {"type": "boolean"},
                "intents": {"type": "array", "items": {"$ref": "#/definitions/http.intentResp"}},
                "trace_id": {"type": "string"}
            }
        },
        "http.transcriptResp": {
            "type": "object",
            "properties": {
                "entries": {"type": "array", "items": {"$ref": "#/definitions/http.entryResp"}},
                "total": {"type": "integer"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "errors": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Desktop Assistant API",
	Description:      "Submit utterances to the assistant and read its transcript and status.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
