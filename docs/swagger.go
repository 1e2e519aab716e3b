// Package docs registers the swagger spec served at /swagger.
package docs

import "github.com/swaggo/swag"

// @tag.name Users
// @tag.description User registration and profile

// @tag.name Auth
// @tag.description Cookie-based session login and logout

// @tag.name Boards
// @tag.description Board management operations

// @tag.name Lists
// @tag.description List management operations

// @tag.name Cards
// @tag.description Card management operations

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/user/register": {"post": {"tags": ["Users"], "summary": "Register a new user"}},
        "/user/profile": {"get": {"tags": ["Users"], "summary": "Get own profile", "security": [{"BearerAuth": []}]}},
        "/auth/login": {"post": {"tags": ["Auth"], "summary": "Log in"}},
        "/auth/logout": {"post": {"tags": ["Auth"], "summary": "Log out", "security": [{"BearerAuth": []}]}},
        "/board": {
            "post": {"tags": ["Boards"], "summary": "Create a board", "security": [{"BearerAuth": []}]},
            "get": {"tags": ["Boards"], "summary": "List own boards", "security": [{"BearerAuth": []}]}
        },
        "/board/{id}": {
            "get": {"tags": ["Boards"], "summary": "Get a board", "security": [{"BearerAuth": []}]},
            "put": {"tags": ["Boards"], "summary": "Update a board", "security": [{"BearerAuth": []}]},
            "delete": {"tags": ["Boards"], "summary": "Delete a board", "security": [{"BearerAuth": []}]}
        },
        "/lists/board/{boardId}": {
            "post": {"tags": ["Lists"], "summary": "Create a list", "security": [{"BearerAuth": []}]},
            "get": {"tags": ["Lists"], "summary": "List a board's lists", "security": [{"BearerAuth": []}]}
        },
        "/lists/{id}": {
            "get": {"tags": ["Lists"], "summary": "Get a list", "security": [{"BearerAuth": []}]},
            "patch": {"tags": ["Lists"], "summary": "Update a list", "security": [{"BearerAuth": []}]},
            "delete": {"tags": ["Lists"], "summary": "Delete a list", "security": [{"BearerAuth": []}]}
        },
        "/cards/list/{listId}": {
            "post": {"tags": ["Cards"], "summary": "Create a card", "security": [{"BearerAuth": []}]},
            "get": {"tags": ["Cards"], "summary": "List a list's cards", "security": [{"BearerAuth": []}]}
        },
        "/cards/{id}": {
            "get": {"tags": ["Cards"], "summary": "Get a card", "security": [{"BearerAuth": []}]},
            "patch": {"tags": ["Cards"], "summary": "Update a card", "security": [{"BearerAuth": []}]},
            "delete": {"tags": ["Cards"], "summary": "Delete a card", "security": [{"BearerAuth": []}]}
        },
        "/cards/{id}/move": {
            "put": {"tags": ["Cards"], "summary": "Move a card", "security": [{"BearerAuth": []}]}
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Taskboard API",
	Description:      "API for managing boards, lists, and cards.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
