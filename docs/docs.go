// Package docs holds the OpenAPI document served at /swagger/. It is
// maintained by hand alongside the swag annotations on the handlers.
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
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "description": "The first account ever registered becomes admin. Later admin self-registration is rejected.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "User registration details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/agents/{agentId}/appointments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "List the viewings bound to an agent",
                "parameters": [
                    {"type": "string", "description": "Agent user ID", "name": "agentId", "in": "path", "required": true},
                    {"type": "integer", "description": "Page (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size 1-100 (default 10)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "pending | confirmed | cancelled | completed", "name": "status", "in": "query"},
                    {"type": "string", "description": "appointmentDate | clientName | clientEmail | status | createdAt", "name": "sort_by", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.listAppointmentsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/properties": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["properties"],
                "summary": "Create a listing",
                "parameters": [
                    {"description": "Listing details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createPropertyRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Property"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/properties/{propertyId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["properties"],
                "summary": "Get a listing",
                "parameters": [
                    {"type": "string", "description": "Property ID", "name": "propertyId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Property"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["properties"],
                "summary": "Delete a listing",
                "parameters": [
                    {"type": "string", "description": "Property ID", "name": "propertyId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["properties"],
                "summary": "Update a listing",
                "parameters": [
                    {"type": "string", "description": "Property ID", "name": "propertyId", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updatePropertyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Property"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/properties/{propertyId}/features": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["features"],
                "summary": "List the features of a listing",
                "parameters": [
                    {"type": "string", "description": "Property ID", "name": "propertyId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.PropertyFeature"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["features"],
                "summary": "Add a feature to a listing",
                "parameters": [
                    {"type": "string", "description": "Property ID", "name": "propertyId", "in": "path", "required": true},
                    {"description": "Feature details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createFeatureRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.PropertyFeature"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/properties/{propertyId}/features/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["features"],
                "summary": "Get a listing feature",
                "parameters": [
                    {"type": "string", "description": "Property ID", "name": "propertyId", "in": "path", "required": true},
                    {"type": "string", "description": "Feature ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.PropertyFeature"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["features"],
                "summary": "Remove a listing feature",
                "parameters": [
                    {"type": "string", "description": "Property ID", "name": "propertyId", "in": "path", "required": true},
                    {"type": "string", "description": "Feature ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["features"],
                "summary": "Update a listing feature",
                "parameters": [
                    {"type": "string", "description": "Property ID", "name": "propertyId", "in": "path", "required": true},
                    {"type": "string", "description": "Feature ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateFeatureRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.PropertyFeature"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/properties/{propertyId}/appointments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "List the viewings of a property",
                "parameters": [
                    {"type": "string", "description": "Property ID", "name": "propertyId", "in": "path", "required": true},
                    {"type": "integer", "description": "Page (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size 1-100 (default 10)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Case-insensitive match on client name or email", "name": "search", "in": "query"},
                    {"type": "string", "description": "Exact client name", "name": "client_name", "in": "query"},
                    {"type": "string", "description": "Exact client email", "name": "client_email", "in": "query"},
                    {"type": "string", "description": "Exact client phone", "name": "client_phone", "in": "query"},
                    {"type": "string", "description": "pending | confirmed | cancelled | completed", "name": "status", "in": "query"},
                    {"type": "string", "description": "Inclusive lower bound on appointment_date", "name": "start_date", "in": "query"},
                    {"type": "string", "description": "Inclusive upper bound on appointment_date", "name": "end_date", "in": "query"},
                    {"type": "string", "description": "appointmentDate | clientName | clientEmail | status | createdAt", "name": "sort_by", "in": "query"},
                    {"type": "string", "description": "ASC | DESC (default DESC)", "name": "sort_order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.listAppointmentsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Missing client fields default to the caller's profile. Rejected with 409 when the slot overlaps an existing appointment of the property.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Book a viewing",
                "parameters": [
                    {"type": "string", "description": "Property ID", "name": "propertyId", "in": "path", "required": true},
                    {"description": "Appointment details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createAppointmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.appointmentResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/properties/{propertyId}/appointments/{id}/history": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Entries are recorded asynchronously and survive deletion of the appointment.",
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Audit trail of a viewing",
                "parameters": [
                    {"type": "string", "description": "Property ID", "name": "propertyId", "in": "path", "required": true},
                    {"type": "string", "description": "Appointment ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.activityListResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/properties/{propertyId}/appointments/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Get a viewing with its property and agent",
                "parameters": [
                    {"type": "string", "description": "Property ID", "name": "propertyId", "in": "path", "required": true},
                    {"type": "string", "description": "Appointment ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.appointmentDetailResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["appointments"],
                "summary": "Delete a viewing",
                "parameters": [
                    {"type": "string", "description": "Property ID", "name": "propertyId", "in": "path", "required": true},
                    {"type": "string", "description": "Appointment ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Only an admin, the bound agent or the property's agent may update. Date or duration changes are re-checked for conflicts.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["appointments"],
                "summary": "Update a viewing",
                "parameters": [
                    {"type": "string", "description": "Property ID", "name": "propertyId", "in": "path", "required": true},
                    {"type": "string", "description": "Appointment ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateAppointmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.appointmentDetailResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.PropertyFeature": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "property_id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "category": {"type": "string", "enum": ["INTERIOR", "EXTERIOR", "COMMUNITY"]},
                "is_highlight": {"type": "boolean"},
                "value": {"type": "integer"},
                "unit": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "handler.createFeatureRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "minLength": 2, "maxLength": 50},
                "description": {"type": "string", "maxLength": 2000},
                "category": {"type": "string", "enum": ["INTERIOR", "EXTERIOR", "COMMUNITY"]},
                "is_highlight": {"type": "boolean"},
                "value": {"type": "integer"},
                "unit": {"type": "string", "maxLength": 50}
            }
        },
        "handler.updateFeatureRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "minLength": 2, "maxLength": 50},
                "description": {"type": "string", "maxLength": 2000},
                "category": {"type": "string", "enum": ["INTERIOR", "EXTERIOR", "COMMUNITY"]},
                "is_highlight": {"type": "boolean"},
                "value": {"type": "integer"},
                "unit": {"type": "string", "maxLength": 50}
            }
        },
        "domain.Property": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number"},
                "address": {"type": "string"},
                "city": {"type": "string"},
                "bedrooms": {"type": "integer"},
                "bathrooms": {"type": "integer"},
                "area": {"type": "number"},
                "property_type": {"type": "string"},
                "is_available": {"type": "boolean"},
                "agent_id": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "role": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "handler.activityListResponse": {
            "type": "object",
            "properties": {
                "appointment_id": {"type": "string"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/handler.activityResponse"}}
            }
        },
        "handler.activityResponse": {
            "type": "object",
            "properties": {
                "action": {"type": "string", "enum": ["created", "updated", "removed"]},
                "actor_id": {"type": "string"},
                "status": {"type": "string"},
                "appointment_date": {"type": "string"},
                "duration_minutes": {"type": "integer"},
                "occurred_at": {"type": "string"}
            }
        },
        "handler.agentResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "handler.appointmentDetailResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "property_id": {"type": "string"},
                "agent_id": {"type": "string"},
                "appointment_date": {"type": "string"},
                "ends_at": {"type": "string"},
                "duration_minutes": {"type": "integer"},
                "client_name": {"type": "string"},
                "client_email": {"type": "string"},
                "client_phone": {"type": "string"},
                "notes": {"type": "string"},
                "status": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "property": {"$ref": "#/definitions/handler.propertySummaryResponse"},
                "agent": {"$ref": "#/definitions/handler.agentResponse"}
            }
        },
        "handler.appointmentResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "property_id": {"type": "string"},
                "agent_id": {"type": "string"},
                "appointment_date": {"type": "string"},
                "ends_at": {"type": "string"},
                "duration_minutes": {"type": "integer"},
                "client_name": {"type": "string"},
                "client_email": {"type": "string"},
                "client_phone": {"type": "string"},
                "notes": {"type": "string"},
                "status": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "handler.authResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.User"}
            }
        },
        "handler.createAppointmentRequest": {
            "type": "object",
            "required": ["appointment_date"],
            "properties": {
                "appointment_date": {"type": "string"},
                "duration_minutes": {"type": "integer", "minimum": 15, "maximum": 240},
                "client_name": {"type": "string", "maxLength": 100},
                "client_email": {"type": "string"},
                "client_phone": {"type": "string", "maxLength": 30},
                "notes": {"type": "string", "maxLength": 500},
                "status": {"type": "string", "enum": ["pending", "confirmed", "cancelled", "completed"]},
                "agent_id": {"type": "string"}
            }
        },
        "handler.createPropertyRequest": {
            "type": "object",
            "required": ["address", "city", "title"],
            "properties": {
                "title": {"type": "string", "maxLength": 200},
                "description": {"type": "string", "maxLength": 2000},
                "price": {"type": "number", "minimum": 0},
                "address": {"type": "string"},
                "city": {"type": "string"},
                "bedrooms": {"type": "integer", "minimum": 0},
                "bathrooms": {"type": "integer", "minimum": 0},
                "area": {"type": "number", "minimum": 0},
                "property_type": {"type": "string", "enum": ["house", "apartment", "condo", "townhouse", "land", "commercial"]},
                "is_available": {"type": "boolean"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "handler.listAppointmentsResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/handler.appointmentResponse"}},
                "meta": {"$ref": "#/definitions/handler.paginationResponse"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.paginationResponse": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "handler.propertySummaryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "city": {"type": "string"},
                "agent_id": {"type": "string"}
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["email", "first_name", "last_name", "password"],
            "properties": {
                "first_name": {"type": "string", "maxLength": 50},
                "last_name": {"type": "string", "maxLength": 50},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6, "maxLength": 100},
                "phone": {"type": "string", "maxLength": 30},
                "role": {"type": "string", "enum": ["admin", "agent", "client"]}
            }
        },
        "handler.updateAppointmentRequest": {
            "type": "object",
            "properties": {
                "appointment_date": {"type": "string"},
                "duration_minutes": {"type": "integer", "minimum": 15, "maximum": 240},
                "client_name": {"type": "string", "maxLength": 100},
                "client_email": {"type": "string"},
                "client_phone": {"type": "string", "maxLength": 30},
                "notes": {"type": "string", "maxLength": 500},
                "status": {"type": "string", "enum": ["pending", "confirmed", "cancelled", "completed"]}
            }
        },
        "handler.updatePropertyRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "maxLength": 200},
                "description": {"type": "string", "maxLength": 2000},
                "price": {"type": "number", "minimum": 0},
                "address": {"type": "string"},
                "city": {"type": "string"},
                "bedrooms": {"type": "integer", "minimum": 0},
                "bathrooms": {"type": "integer", "minimum": 0},
                "area": {"type": "number", "minimum": 0},
                "property_type": {"type": "string", "enum": ["house", "apartment", "condo", "townhouse", "land", "commercial"]},
                "is_available": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the JWT.",
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Viewings API",
	Description:      "Scheduling of property viewing appointments with per-property conflict detection.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
