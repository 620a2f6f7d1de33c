// Package docs holds the swagger document for the douze-points API.
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
        "/game": {
            "get": {
                "description": "Returns the live game document.",
                "produces": ["application/json"],
                "tags": ["game"],
                "summary": "Get the current game",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Game"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/render.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/render.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Stores the posted game document as-is. Votes in the body are not validated.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["game"],
                "summary": "Replace the current game",
                "parameters": [
                    {"description": "Game document", "name": "game", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Game"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Game"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/render.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/render.ErrorResponse"}}
                }
            }
        },
        "/reset": {
            "post": {
                "description": "Replaces the live game with the default template, discarding all votes.",
                "produces": ["application/json"],
                "tags": ["game"],
                "summary": "Reset the game",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Game"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/render.ErrorResponse"}}
                }
            }
        },
        "/vote": {
            "post": {
                "description": "Moves one point value from voted_by to voted_for.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["game"],
                "summary": "Cast a vote",
                "parameters": [
                    {"description": "Vote", "name": "vote", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.Vote"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Game"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/render.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/render.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/render.ErrorResponse"}}
                }
            }
        },
        "/participants/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["game"],
                "summary": "Get one participant",
                "parameters": [
                    {"type": "string", "description": "Participant name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Participant"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/render.ErrorResponse"}}
                }
            }
        },
        "/standings": {
            "get": {
                "description": "Participants ranked by points; ties share a rank.",
                "produces": ["application/json"],
                "tags": ["game"],
                "summary": "Get the scoreboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/game.Standing"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/render.ErrorResponse"}}
                }
            }
        },
        "/qr": {
            "get": {
                "description": "PNG QR code for the client URL, so players can join from their phones.",
                "produces": ["image/png"],
                "tags": ["client"],
                "summary": "Join QR code",
                "parameters": [
                    {"type": "string", "description": "URL to encode, defaults to the configured public URL", "name": "url", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/render.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "game.Standing": {
            "type": "object",
            "properties": {
                "avatar": {"type": "string"},
                "name": {"type": "string"},
                "points": {"type": "integer"},
                "rank": {"type": "integer"},
                "votes_left": {"type": "integer"},
                "votes_received": {"type": "integer"}
            }
        },
        "models.Game": {
            "type": "object",
            "properties": {
                "audio_name": {"type": "string"},
                "participants": {"type": "array", "items": {"$ref": "#/definitions/models.Participant"}},
                "player_name": {"type": "string"},
                "save_file": {"type": "string"},
                "vote_buff": {"type": "object", "additionalProperties": true},
                "voter": {"$ref": "#/definitions/models.Participant"}
            }
        },
        "models.Participant": {
            "type": "object",
            "properties": {
                "available_votes": {"type": "array", "items": {"type": "integer"}},
                "avatar": {"type": "string"},
                "can_vote": {"type": "boolean"},
                "is_checked": {"type": "boolean"},
                "j_100_played": {"type": "boolean"},
                "j_75_played": {"type": "boolean"},
                "name": {"type": "string"},
                "points": {"type": "integer"},
                "voted_by": {"type": "object", "additionalProperties": {"type": "integer"}},
                "voted_for": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "models.Vote": {
            "type": "object",
            "properties": {
                "vote": {"type": "integer"},
                "voted_by": {"type": "string"},
                "voted_for": {"type": "string"}
            }
        },
        "render.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "detail": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "douze-points API",
	Description:      "Party-game voting backend: participants hand out 12, 10, 8 ... 1 points to each other.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
