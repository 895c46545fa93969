// Package docs holds the OpenAPI document served under /swagger.
//
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/transcripts": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Sorts segments by start time, merges consecutive segments of the same speaker into paragraphs and stores the result",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Transcripts"],
                "summary": "Build transcript",
                "parameters": [
                    {
                        "description": "Segments and speaker names",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/transcript.CreateTranscriptRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/transcript.TranscriptResponse"}},
                    "400": {"description": "Malformed segment or payload", "schema": {"type": "object", "additionalProperties": true}},
                    "401": {"description": "Missing or invalid token", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/transcripts/document": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Accepts the diarization service output ({\"output\": {\"segments\": [...]}}) as the request body",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Transcripts"],
                "summary": "Build transcript from a diarization document",
                "parameters": [
                    {"type": "string", "description": "Comma separated display names, the Nth replaces SPEAKER_<N>", "name": "speakers", "in": "query"},
                    {"type": "string", "description": "Free-form origin label", "name": "source", "in": "query"},
                    {"type": "boolean", "description": "Upload the rendered transcript to object storage", "name": "upload", "in": "query"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/transcript.TranscriptResponse"}},
                    "400": {"description": "Malformed document or segment", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/transcripts/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Transcripts"],
                "summary": "Get transcript",
                "parameters": [
                    {"type": "string", "description": "Transcript ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/transcript.TranscriptResponse"}},
                    "404": {"description": "Transcript not found", "schema": {"type": "object", "additionalProperties": true}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Transcripts"],
                "summary": "Delete transcript",
                "parameters": [
                    {"type": "string", "description": "Transcript ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "404": {"description": "Transcript not found", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/transcripts/{id}/analyses": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Analysis"],
                "summary": "List analyses",
                "parameters": [
                    {"type": "string", "description": "Transcript ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/analysis.AnalysisResponse"}}},
                    "404": {"description": "Transcript not found", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/transcripts/{id}/analysis": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Analysis"],
                "summary": "Get latest analysis",
                "parameters": [
                    {"type": "string", "description": "Transcript ID (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/analysis.AnalysisResponse"}},
                    "404": {"description": "No analysis yet", "schema": {"type": "object", "additionalProperties": true}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Sends the transcript to the configured LLM and returns the analysis with token usage and estimated cost. Identical transcripts are served from cache unless refresh is set.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Analysis"],
                "summary": "Analyze transcript",
                "parameters": [
                    {"type": "string", "description": "Transcript ID (UUID)", "name": "id", "in": "path", "required": true},
                    {"description": "Options", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/analysis.AnalyzeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/analysis.AnalysisResponse"}},
                    "404": {"description": "Transcript not found", "schema": {"type": "object", "additionalProperties": true}},
                    "502": {"description": "LLM call failed", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "No LLM configured", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/cost": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Prices prompt and output tokens. Above 128000 total tokens the long-context rates apply to both.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Analysis"],
                "summary": "Estimate cost",
                "parameters": [
                    {"description": "Token usage", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/analysis.CostRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/analysis.CostResponse"}},
                    "400": {"description": "Negative token count", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/webhooks/assemblyai": {
            "post": {
                "description": "Called by AssemblyAI when a submitted transcript finishes. Completed transcripts are fetched, converted to segments and stored once per AssemblyAI id.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Webhooks"],
                "summary": "AssemblyAI webhook",
                "parameters": [
                    {
                        "description": "Webhook payload",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "status": {"type": "string"},
                                "transcript_id": {"type": "string"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Ignored (not completed) or already stored", "schema": {"type": "object", "additionalProperties": true}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/transcript.TranscriptResponse"}},
                    "401": {"description": "Bad webhook secret", "schema": {"type": "object", "additionalProperties": true}},
                    "502": {"description": "AssemblyAI lookup failed", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "analysis.AnalysisResponse": {
            "type": "object",
            "properties": {
                "cached": {"type": "boolean"},
                "content": {"type": "string"},
                "cost_usd": {"type": "number"},
                "created_at": {"type": "string"},
                "duration_ms": {"type": "integer"},
                "id": {"type": "string"},
                "model": {"type": "string"},
                "output_tokens": {"type": "integer"},
                "prompt_tokens": {"type": "integer"},
                "provider": {"type": "string"},
                "total_tokens": {"type": "integer"},
                "transcript_id": {"type": "string"}
            }
        },
        "analysis.AnalyzeRequest": {
            "type": "object",
            "properties": {
                "refresh": {"type": "boolean"},
                "upload": {"type": "boolean"}
            }
        },
        "analysis.CostRequest": {
            "type": "object",
            "properties": {
                "output_tokens": {"type": "integer", "minimum": 0},
                "prompt_tokens": {"type": "integer", "minimum": 0}
            }
        },
        "analysis.CostResponse": {
            "type": "object",
            "properties": {
                "cost_usd": {"type": "number"},
                "output_tokens": {"type": "integer"},
                "prompt_tokens": {"type": "integer"},
                "tier": {"type": "string"},
                "total_tokens": {"type": "integer"}
            }
        },
        "entities.Paragraph": {
            "type": "object",
            "properties": {
                "speaker": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "entities.Segment": {
            "type": "object",
            "properties": {
                "speaker": {"type": "string"},
                "start": {"type": "number"},
                "text": {"type": "string"}
            }
        },
        "transcript.CreateTranscriptRequest": {
            "type": "object",
            "required": ["segments"],
            "properties": {
                "segments": {"type": "array", "items": {"$ref": "#/definitions/entities.Segment"}},
                "source": {"type": "string", "maxLength": 255},
                "speakers": {"type": "array", "maxItems": 100, "items": {"type": "string"}},
                "upload": {"type": "boolean"}
            }
        },
        "transcript.TranscriptResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "download_url": {"type": "string"},
                "id": {"type": "string"},
                "paragraph_count": {"type": "integer"},
                "paragraphs": {"type": "array", "items": {"$ref": "#/definitions/entities.Paragraph"}},
                "segment_count": {"type": "integer"},
                "source": {"type": "string"},
                "speaker_count": {"type": "integer"},
                "speaker_labels": {"type": "object", "additionalProperties": {"type": "string"}},
                "text": {"type": "string"}
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
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Transcript Assistant API",
	Description:      "Builds speaker-grouped transcripts from diarization output and analyzes them with an LLM",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
