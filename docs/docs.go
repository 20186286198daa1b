// Package docs registers the OpenAPI description served at /swagger.
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
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "User login",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "Login successful", "schema": {"$ref": "#/definitions/dto.StructuredResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "User logout",
                "responses": {
                    "200": {"description": "Logout successful", "schema": {"$ref": "#/definitions/dto.StructuredResponse"}}
                }
            }
        },
        "/home": {
            "get": {
                "tags": ["home"],
                "summary": "Landing page",
                "responses": {
                    "200": {"description": "Landing page", "schema": {"$ref": "#/definitions/dto.StructuredResponse"}}
                }
            }
        },
        "/reviews": {
            "get": {
                "tags": ["reviews"],
                "summary": "List reviews",
                "responses": {
                    "200": {"description": "Reviews retrieved successfully", "schema": {"$ref": "#/definitions/dto.StructuredResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["reviews"],
                "summary": "Submit a review",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/models.ReviewInput"}}],
                "responses": {
                    "201": {"description": "Review created", "schema": {"$ref": "#/definitions/dto.StructuredResponse"}},
                    "400": {"description": "Invalid rating or comment", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["courses"],
                "summary": "List courses",
                "responses": {
                    "200": {"description": "Courses retrieved successfully", "schema": {"$ref": "#/definitions/dto.StructuredResponse"}}
                }
            }
        },
        "/admin/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Admin dashboard",
                "responses": {
                    "200": {"description": "Dashboard state", "schema": {"$ref": "#/definitions/dto.StructuredResponse"}}
                }
            }
        },
        "/admin/dashboard/chart": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Enrollment chart",
                "responses": {
                    "200": {"description": "Chart snapshot", "schema": {"$ref": "#/definitions/dto.StructuredResponse"}}
                }
            }
        },
        "/admin/instructors": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "List instructors",
                "responses": {
                    "200": {"description": "Instructors retrieved successfully", "schema": {"$ref": "#/definitions/dto.StructuredResponse"}}
                }
            }
        },
        "/admin/messages": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "List contact messages",
                "responses": {
                    "200": {"description": "Messages retrieved successfully", "schema": {"$ref": "#/definitions/dto.StructuredResponse"}}
                }
            }
        },
        "/admin/courses/{id}/enrollments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "List enrollments of a course",
                "parameters": [{"type": "integer", "description": "Course ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Enrollments retrieved successfully", "schema": {"$ref": "#/definitions/dto.StructuredResponse"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "admin@coursehub.fr"},
                "password": {"type": "string", "example": "Admin123!"}
            }
        },
        "models.ReviewInput": {
            "type": "object",
            "required": ["rating", "comment"],
            "properties": {
                "rating": {"type": "integer", "maximum": 5, "minimum": 1, "example": 5},
                "comment": {"type": "string", "maxLength": 500, "minLength": 10}
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "AUTH_001"},
                "message": {"type": "string"},
                "field": {"type": "string"},
                "severity": {"type": "string", "example": "ERROR"},
                "details": {}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.StructuredResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "message": {"type": "string"},
                "data": {},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "timestamp": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT token for authorization",
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
	Schemes:          []string{"http", "https"},
	Title:            "CourseHub API",
	Description:      "API for the CourseHub course-enrollment platform",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
