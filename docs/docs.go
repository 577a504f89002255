// Package docs registers the swagger document served under /swagger.
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
        "/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List tasks of the session, filtered and sorted",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "priority", "in": "query", "type": "string", "enum": ["all", "low", "medium", "high"]},
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "sort", "in": "query", "type": "string", "enum": ["createdAt", "title", "priority", "dueDate"]},
                    {"name": "order", "in": "query", "type": "string", "enum": ["asc", "desc"]}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Task"}}}}
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Create a task",
                "parameters": [{"name": "task", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TaskRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Task"}},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ValidationErrors"}}
                }
            }
        },
        "/tasks/{id}": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Get a task",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Task"}}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["Tasks"],
                "summary": "Replace the editable fields of a task",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "task", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Task"}},
                    "404": {"description": "Not found"},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ValidationErrors"}}
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "Deleted or absent"}}
            }
        },
        "/tasks/{id}/drop": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Change only the status of a task, keeping list order",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "drop", "in": "body", "required": true, "schema": {"type": "object", "properties": {"status": {"type": "string"}}}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Task"}}}}
            }
        },
        "/board": {
            "get": {
                "tags": ["Board"],
                "summary": "Kanban columns with their tasks",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Column"}}}}
            }
        },
        "/board/move": {
            "post": {
                "tags": ["Board"],
                "summary": "Drag a task within or across columns",
                "parameters": [{"name": "move", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Move"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Column"}}}}
            }
        },
        "/stats": {
            "get": {"tags": ["Board"], "summary": "Task statistics", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Stats"}}}}
        },
        "/categories": {
            "get": {"tags": ["Board"], "summary": "Distinct categories", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}}}
        },
        "/columns": {
            "get": {"tags": ["Board"], "summary": "Kanban column catalogue", "responses": {"200": {"description": "OK"}}}
        },
        "/preferences": {
            "get": {"tags": ["Preferences"], "summary": "Session preferences", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Preferences"}}}},
            "put": {
                "tags": ["Preferences"],
                "summary": "Merge preferences",
                "parameters": [{"name": "preferences", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Preferences"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Preferences"}}, "400": {"description": "Invalid preferences"}}
            }
        }
    },
    "definitions": {
        "Task": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "category": {"type": "string"},
                "status": {"type": "string", "enum": ["todo", "in-progress", "done"]},
                "createdAt": {"type": "string", "format": "date-time"},
                "dueDate": {"type": "string", "format": "date-time", "x-nullable": true},
                "overdue": {"type": "boolean"}
            }
        },
        "TaskRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "maxLength": 100},
                "description": {"type": "string", "maxLength": 500},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "category": {"type": "string", "maxLength": 50},
                "status": {"type": "string", "enum": ["todo", "in-progress", "done"]},
                "dueDate": {"type": "string", "x-nullable": true}
            }
        },
        "ValidationErrors": {
            "type": "object",
            "properties": {"errors": {"type": "array", "items": {"type": "string"}}}
        },
        "Location": {
            "type": "object",
            "properties": {"column": {"type": "string"}, "index": {"type": "integer"}}
        },
        "Move": {
            "type": "object",
            "properties": {
                "taskId": {"type": "string"},
                "source": {"$ref": "#/definitions/Location"},
                "destination": {"$ref": "#/definitions/Location"}
            }
        },
        "Column": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/Task"}}
            }
        },
        "Stats": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "todo": {"type": "integer"},
                "inProgress": {"type": "integer"},
                "done": {"type": "integer"},
                "overdue": {"type": "integer"}
            }
        },
        "Preferences": {
            "type": "object",
            "properties": {
                "theme": {"type": "string", "enum": ["light", "dark"]},
                "viewMode": {"type": "string", "enum": ["kanban", "list"]},
                "filters": {
                    "type": "object",
                    "properties": {"searchTerm": {"type": "string"}, "priority": {"type": "string"}, "category": {"type": "string"}}
                },
                "sortBy": {"type": "string", "enum": ["createdAt", "title", "priority", "dueDate"]},
                "sortOrder": {"type": "string", "enum": ["asc", "desc"]}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "TaskFlow API",
	Description:      "Task board for a single session: tasks, kanban columns, statistics and preferences.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
