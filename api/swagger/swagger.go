package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Factory Ops API",
        "description": "Factory operations tracking: logistics requests, work orders, production records, charts and reports",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Account registration and login"},
        {"name": "Logistics", "description": "Module request lifecycle"},
        {"name": "Tracking", "description": "Tracking log status history"},
        {"name": "WorkOrders", "description": "Work order management"},
        {"name": "Production", "description": "Production output records"},
        {"name": "Charts", "description": "Dashboard aggregations"},
        {"name": "Reports", "description": "Document generation"},
        {"name": "Users", "description": "Profiles and uploads"},
        {"name": "Settings", "description": "Per-user preferences"},
        {"name": "Notifications", "description": "Activity feed"}
    ],
    "paths": {
        "/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register a new account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload or duplicate email", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate and issue an access token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Bad password", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown user", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/forgot-password": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Start the password reset flow",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ForgotPasswordRequest"}}
                ],
                "responses": {
                    "200": {"description": "Reset email sent", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reset-password": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Complete the password reset flow",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ResetPasswordRequest"}}
                ],
                "responses": {
                    "200": {"description": "Password reset", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/logistics": {
            "get": {
                "tags": ["Logistics"],
                "summary": "List module requests",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Logistics"],
                "summary": "Submit a module request",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitModuleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tracking": {
            "get": {
                "tags": ["Tracking"],
                "summary": "List tracking logs",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Tracking"],
                "summary": "Update tracking log status",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateTrackingRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown log", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/workorder": {
            "get": {
                "tags": ["WorkOrders"],
                "summary": "List work orders",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["WorkOrders"],
                "summary": "Create a work order",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitWorkOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/workorder/{id}": {
            "put": {
                "tags": ["WorkOrders"],
                "summary": "Update work order status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateWorkOrderStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown work order", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/production": {
            "get": {
                "tags": ["Production"],
                "summary": "List production records",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Production"],
                "summary": "Record production output",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitProductionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Production"],
                "summary": "Update a production record",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateProductionRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown record", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Production"],
                "summary": "Delete a production record",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DeleteProductionRequest"}}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/logistics-summary": {
            "get": {
                "tags": ["Charts"],
                "summary": "Request counts per recipient",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/module-chart": {
            "get": {
                "tags": ["Charts"],
                "summary": "Request counts per module, descending",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/fulfillment-rate": {
            "get": {
                "tags": ["Charts"],
                "summary": "Pending versus fulfilled split",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reports": {
            "post": {
                "tags": ["Reports"],
                "summary": "Generate a PDF or CSV report",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReportRequest"}}
                ],
                "responses": {
                    "200": {"description": "Document stream"},
                    "400": {"description": "Missing dataset", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/user/{email}": {
            "get": {
                "tags": ["Users"],
                "summary": "Fetch a profile",
                "parameters": [
                    {"name": "email", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown user", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Users"],
                "summary": "Update a profile",
                "parameters": [
                    {"name": "email", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/upload": {
            "post": {
                "tags": ["Users"],
                "summary": "Upload a profile picture",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "profilePicture", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Stored", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/settings": {
            "get": {
                "tags": ["Settings"],
                "summary": "Fetch the caller's settings",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No settings yet", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Settings"],
                "summary": "Create or overwrite the caller's settings",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveSettingsRequest"}}
                ],
                "responses": {
                    "200": {"description": "Saved", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notifications": {
            "get": {
                "tags": ["Notifications"],
                "summary": "List notifications, newest first",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "RegisterRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "remember": {"type": "boolean"}
            }
        },
        "ForgotPasswordRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {
                "email": {"type": "string"}
            }
        },
        "ResetPasswordRequest": {
            "type": "object",
            "required": ["token", "password"],
            "properties": {
                "token": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "SubmitModuleRequest": {
            "type": "object",
            "required": ["module", "requestedBy", "recipient", "requestDate", "quantity"],
            "properties": {
                "module": {"type": "string"},
                "requestedBy": {"type": "string"},
                "description": {"type": "string"},
                "recipient": {"type": "string"},
                "requestDate": {"type": "string"},
                "quantity": {"type": "integer"}
            }
        },
        "UpdateTrackingRequest": {
            "type": "object",
            "required": ["logId", "status"],
            "properties": {
                "logId": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "SubmitWorkOrderRequest": {
            "type": "object",
            "required": ["module", "createdBy", "createdDate", "dueDate", "quantity"],
            "properties": {
                "module": {"type": "string"},
                "createdBy": {"type": "string"},
                "description": {"type": "string"},
                "assignedTo": {"type": "string"},
                "createdDate": {"type": "string"},
                "dueDate": {"type": "string"},
                "priority": {"type": "string"},
                "quantity": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "UpdateWorkOrderStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string"}
            }
        },
        "SubmitProductionRequest": {
            "type": "object",
            "required": ["workOrderID", "dateRequested", "fulfilledBy", "dateFulfilled", "producedQty"],
            "properties": {
                "workOrderID": {"type": "string"},
                "dateRequested": {"type": "string"},
                "fulfilledBy": {"type": "string"},
                "dateFulfilled": {"type": "string"},
                "producedQty": {"type": "integer"}
            }
        },
        "UpdateProductionRequest": {
            "type": "object",
            "required": ["id"],
            "properties": {
                "id": {"type": "string"},
                "workOrderID": {"type": "string"},
                "dateRequested": {"type": "string"},
                "fulfilledBy": {"type": "string"},
                "dateFulfilled": {"type": "string"},
                "producedQty": {"type": "integer"}
            }
        },
        "DeleteProductionRequest": {
            "type": "object",
            "required": ["id"],
            "properties": {
                "id": {"type": "string"}
            }
        },
        "ReportRequest": {
            "type": "object",
            "required": ["productionData", "logisticsData", "trackingData"],
            "properties": {
                "productionData": {"type": "array", "items": {"type": "object"}},
                "logisticsData": {"type": "array", "items": {"type": "object"}},
                "trackingData": {"type": "array", "items": {"type": "object"}},
                "format": {"type": "string", "enum": ["pdf", "csv"]}
            }
        },
        "UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "birthday": {"type": "string"},
                "address": {"type": "string"},
                "profilePicture": {"type": "string"}
            }
        },
        "SaveSettingsRequest": {
            "type": "object",
            "properties": {
                "pushNotifications": {"type": "boolean"},
                "darkMode": {"type": "boolean"},
                "emailNotifications": {"type": "boolean"},
                "autoLogout": {"type": "boolean"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
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
