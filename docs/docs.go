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
        "/add-amenity": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Amenity added",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request data or unknown prison",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to add amenity",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Add amenity",
                "tags": [
                    "facilities"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Amenity",
                        "schema": {
                            "$ref": "#/definitions/dto.AddAmenityRequest"
                        }
                    }
                ]
            }
        },
        "/add-cell": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Cell added",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request data or unknown prison",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to add cell",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Add holding cell",
                "tags": [
                    "facilities"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Holding cell",
                        "schema": {
                            "$ref": "#/definitions/dto.AddCellRequest"
                        }
                    }
                ]
            }
        },
        "/add-certification": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Certification added",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request data or unknown employee",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to add certification",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Add certification",
                "tags": [
                    "staff"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Certification",
                        "schema": {
                            "$ref": "#/definitions/dto.AddCertificationRequest"
                        }
                    }
                ]
            }
        },
        "/add-club": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Club added",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request data or duplicate club",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to add club",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Add club",
                "tags": [
                    "facilities"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Club",
                        "schema": {
                            "$ref": "#/definitions/dto.AddClubRequest"
                        }
                    }
                ]
            }
        },
        "/add-complete-inmate": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Complete inmate record added successfully",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request data or constraint violation",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to add complete inmate record",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Add complete inmate record",
                "description": "Inserts inmate, sentence and medical record in one transaction; nothing is stored if any insert fails",
                "tags": [
                    "inmates"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Inmate, sentence and medical information",
                        "schema": {
                            "$ref": "#/definitions/dto.AddCompleteInmateRequest"
                        }
                    }
                ]
            }
        },
        "/add-employee": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Employee added",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request data or duplicate employee",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to add employee",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Add employee",
                "tags": [
                    "staff"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Employee",
                        "schema": {
                            "$ref": "#/definitions/dto.AddEmployeeRequest"
                        }
                    }
                ]
            }
        },
        "/add-inmate": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Inmate added",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request data or constraint violation",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to add inmate",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Add inmate",
                "description": "Creates an inmate and records its first cell assignment",
                "tags": [
                    "inmates"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Inmate information",
                        "schema": {
                            "$ref": "#/definitions/dto.AddInmateRequest"
                        }
                    }
                ]
            }
        },
        "/add-medical": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Record added!",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request data or constraint violation",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to add record",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Add medical record",
                "tags": [
                    "medical"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Medical record",
                        "schema": {
                            "$ref": "#/definitions/dto.AddMedicalRequest"
                        }
                    }
                ]
            }
        },
        "/add-prison": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Prison added",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request data or unknown security level",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to add prison",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Add prison",
                "tags": [
                    "facilities"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Prison",
                        "schema": {
                            "$ref": "#/definitions/dto.AddPrisonRequest"
                        }
                    }
                ]
            }
        },
        "/add-prison-security": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Security level added",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request data or duplicate level",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to add security level",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Add security level",
                "tags": [
                    "facilities"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Security level",
                        "schema": {
                            "$ref": "#/definitions/dto.AddPrisonSecurityRequest"
                        }
                    }
                ]
            }
        },
        "/add-sentence": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Sentence added with its generated id",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Sentence"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid request data or unknown inmate",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to add sentence",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Add sentence",
                "tags": [
                    "sentences"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Sentence",
                        "schema": {
                            "$ref": "#/definitions/dto.AddSentenceRequest"
                        }
                    }
                ]
            }
        },
        "/amenities": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Amenities",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Amenity"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Failed to fetch amenities",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "List amenities",
                "tags": [
                    "facilities"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/assign-employee": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Employee assigned",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request data, unknown employee or prison",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to assign employee",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Assign employee",
                "tags": [
                    "staff"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Assignment",
                        "schema": {
                            "$ref": "#/definitions/dto.AssignEmployeeRequest"
                        }
                    }
                ]
            }
        },
        "/basic-inmate-info": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Projection of every inmate",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.InmateBasic"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Failed to fetch basic inmate info",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Basic inmate info",
                "tags": [
                    "inmates"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/cells": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Holding cells",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.HoldingCell"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Failed to fetch cells",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "List holding cells",
                "tags": [
                    "facilities"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/cells-count": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Cell count",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to count cells",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Count holding cells",
                "tags": [
                    "facilities"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/check-db-connection": {
            "get": {
                "responses": {
                    "200": {
                        "description": "connected or unable to connect",
                        "schema": {
                            "type": "string"
                        }
                    }
                },
                "summary": "Check database connection",
                "tags": [
                    "admin"
                ],
                "produces": [
                    "text/plain"
                ]
            }
        },
        "/clubs": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Clubs",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Club"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Failed to fetch clubs",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "List clubs",
                "tags": [
                    "facilities"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/crowded-cells/{minimumCount}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Crowded cells",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.CellCount"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Failed to find crowded cells",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Crowded cells",
                "description": "Cells whose inmate count is at least minimumCount, fullest first. Unparsable or zero values fall back to 2; negative values match every cell.",
                "tags": [
                    "reports"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "minimumCount",
                        "in": "path",
                        "required": true,
                        "description": "Minimum inmate count",
                        "type": "integer"
                    }
                ]
            }
        },
        "/employees": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Employees",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Employee"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Failed to fetch employees",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "List employees",
                "tags": [
                    "staff"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/employees-high-security": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Assignments",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.HighSecurityAssignment"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Failed to fetch high security employees",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Employees at high security prisons",
                "tags": [
                    "staff"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/health": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Service healthy",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.HealthStatus"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "503": {
                        "description": "Database unreachable",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/dto.HealthStatus"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                },
                "summary": "Health check",
                "tags": [
                    "admin"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/high-severity-prisons": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Cells with their prison",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.HighSeverityCell"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Failed to fetch high severity prisons",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "High severity cells",
                "description": "Cells whose count of inmates with a sentence severity above 7 equals the maximum such count",
                "tags": [
                    "reports"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/init-db": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Schema initialized",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to initialize database",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Initialize database",
                "description": "Drops and recreates the schema in one transaction; existing data is lost",
                "tags": [
                    "admin"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/inmate-history/{inmateId}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Cell assignments, oldest first",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.CellAssignment"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid inmate ID",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch cell history",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Inmate cell history",
                "tags": [
                    "inmates"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "inmateId",
                        "in": "path",
                        "required": true,
                        "description": "Inmate ID",
                        "type": "integer"
                    }
                ]
            }
        },
        "/inmates": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Inmates retrieved successfully",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Inmate"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Failed to fetch inmates",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "List inmates",
                "description": "Retrieves every inmate ordered by id",
                "tags": [
                    "inmates"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/inmates-all-cells": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Inmates",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.InmateRef"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Failed to find inmates in all cell types",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Inmates in all cells",
                "tags": [
                    "reports"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/inmates-by-cell/{cellType}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Inmates in the cell with their count",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Inmate"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid cell",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch inmates by cell type",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Inmates by cell",
                "tags": [
                    "inmates"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "cellType",
                        "in": "path",
                        "required": true,
                        "description": "Holding cell",
                        "type": "string"
                    }
                ]
            }
        },
        "/inmates-count": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Inmate count",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to count inmates",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Count inmates",
                "tags": [
                    "inmates"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/inmates-count-by-cell": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Counts ordered by cell",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.CellCount"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Failed to count inmates by cell",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Inmate count per cell",
                "tags": [
                    "reports"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/inmates-leaving-soon": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Upcoming releases",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Inmate"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Failed to fetch upcoming releases",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Inmates leaving soon",
                "description": "Inmates whose end date falls between today and 30 days from today, earliest first",
                "tags": [
                    "inmates"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/inmates-with-medical": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Joined rows",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.InmateMedical"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Failed to fetch inmates with medical data",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Inmates with medical data",
                "tags": [
                    "medical"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/inmates/{inmateId}": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Inmate retrieved successfully",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Inmate"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Invalid inmate ID or inmate not found",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch inmate",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Get inmate by ID",
                "tags": [
                    "inmates"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "inmateId",
                        "in": "path",
                        "required": true,
                        "description": "Inmate ID",
                        "type": "integer"
                    }
                ]
            }
        },
        "/insert-data": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Sample data inserted",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to insert data",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Insert sample data",
                "description": "Clears every table and loads the sample data in one transaction",
                "tags": [
                    "admin"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/medical-data": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Joined rows",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.InmateMedical"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Server error",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Inmates with medical data",
                "tags": [
                    "medical"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/medical-joined": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Joined rows",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.InmateMedicalSentence"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Failed to fetch joined medical data",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Inmates with medical and sentence data",
                "tags": [
                    "medical"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/medical-records": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Medical records",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.MedicalRecord"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Failed to fetch medical records",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "List medical records",
                "tags": [
                    "medical"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/prison-security": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Security levels",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.PrisonSecurity"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Failed to fetch security levels",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "List security levels",
                "tags": [
                    "facilities"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/prisons": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Prisons",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Prison"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Failed to fetch prisons",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "List prisons",
                "tags": [
                    "facilities"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/reduce-sentence": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Sentence reduced",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request data or no sentence for the inmate",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to reduce sentence",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Reduce sentence",
                "description": "Subtracts monthsReduced from every sentence of the inmate; durations never drop below zero",
                "tags": [
                    "sentences"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Inmate and months",
                        "schema": {
                            "$ref": "#/definitions/dto.ReduceSentenceRequest"
                        }
                    }
                ]
            }
        },
        "/remove-cell": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Cell removed",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request data or cell not found",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to remove cell",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Remove holding cell",
                "tags": [
                    "facilities"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Holding cell",
                        "schema": {
                            "$ref": "#/definitions/dto.RemoveCellRequest"
                        }
                    }
                ]
            }
        },
        "/remove-inmate": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Inmate removed successfully",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "400": {
                        "description": "Inmate ID is required, or inmate not found",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to remove inmate",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Remove inmate",
                "tags": [
                    "inmates"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Inmate to remove",
                        "schema": {
                            "$ref": "#/definitions/dto.RemoveInmateRequest"
                        }
                    }
                ]
            }
        },
        "/sentences": {
            "get": {
                "responses": {
                    "200": {
                        "description": "Sentences",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/dto.APIResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Sentence"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Failed to fetch sentences",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "List sentences",
                "tags": [
                    "sentences"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/transfer-inmate": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Transfer outcome; success is false when the inmate does not exist",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "400": {
                        "description": "Missing required fields.",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error.",
                        "schema": {
                            "$ref": "#/definitions/dto.APIResponse"
                        }
                    }
                },
                "summary": "Transfer inmate",
                "description": "Updates the inmate's cell and appends the move to its cell history",
                "tags": [
                    "inmates"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Inmate and destination cell",
                        "schema": {
                            "$ref": "#/definitions/dto.TransferInmateRequest"
                        }
                    }
                ]
            }
        }
    },
    "definitions": {
        "dto.APIResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean",
                    "example": true
                },
                "message": {
                    "type": "string",
                    "example": "Inmate removed successfully"
                },
                "data": {},
                "count": {
                    "type": "integer",
                    "example": 3
                },
                "error": {
                    "$ref": "#/definitions/dto.ErrorDetail"
                },
                "timestamp": {
                    "type": "string",
                    "example": "2025-04-23T12:01:05.123Z"
                }
            }
        },
        "dto.AddAmenityRequest": {
            "type": "object",
            "properties": {
                "amenType": {
                    "type": "string",
                    "example": "Sports"
                },
                "name": {
                    "type": "string",
                    "example": "Gym"
                },
                "recreation": {
                    "type": "string",
                    "example": "Weights"
                },
                "prisonNum": {
                    "type": "integer",
                    "example": 1
                }
            },
            "required": [
                "amenType",
                "name",
                "prisonNum"
            ]
        },
        "dto.AddCellRequest": {
            "type": "object",
            "properties": {
                "cellType": {
                    "type": "string",
                    "example": "A"
                },
                "prisonNum": {
                    "type": "integer",
                    "example": 1
                }
            },
            "required": [
                "cellType",
                "prisonNum"
            ]
        },
        "dto.AddCertificationRequest": {
            "type": "object",
            "properties": {
                "certificate": {
                    "type": "string",
                    "example": "First Aid"
                },
                "skills": {
                    "type": "string",
                    "example": "CPR"
                },
                "empId": {
                    "type": "integer",
                    "example": 10
                }
            },
            "required": [
                "certificate",
                "empId"
            ]
        },
        "dto.AddClubRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Chess Club"
                },
                "clubType": {
                    "type": "string",
                    "example": "Games"
                }
            },
            "required": [
                "name",
                "clubType"
            ]
        },
        "dto.AddCompleteInmateRequest": {
            "type": "object",
            "properties": {
                "inmateId": {
                    "type": "integer",
                    "example": 1
                },
                "holdingCell": {
                    "type": "string",
                    "example": "A"
                },
                "healthNum": {
                    "type": "integer",
                    "example": 100
                },
                "startDate": {
                    "type": "string",
                    "example": "2024-01-01"
                },
                "endDate": {
                    "type": "string",
                    "example": "2024-01-10"
                },
                "duration": {
                    "type": "integer",
                    "example": 24
                },
                "crimeName": {
                    "type": "string",
                    "example": "Burglary"
                },
                "crimeType": {
                    "type": "string",
                    "example": "Property"
                },
                "severity": {
                    "type": "integer",
                    "example": 5
                },
                "recordNum": {
                    "type": "integer",
                    "example": 500
                },
                "bloodType": {
                    "type": "string",
                    "example": "O+"
                },
                "weight": {
                    "type": "number",
                    "example": 72.5
                },
                "sex": {
                    "type": "string",
                    "example": "M"
                },
                "height": {
                    "type": "number",
                    "example": 180.0
                }
            },
            "required": [
                "inmateId",
                "holdingCell",
                "healthNum",
                "startDate",
                "endDate",
                "duration",
                "crimeName",
                "crimeType",
                "recordNum",
                "bloodType",
                "weight",
                "sex",
                "height"
            ]
        },
        "dto.AddEmployeeRequest": {
            "type": "object",
            "properties": {
                "empId": {
                    "type": "integer",
                    "example": 10
                },
                "name": {
                    "type": "string",
                    "example": "Dana Reyes"
                },
                "role": {
                    "type": "string",
                    "example": "GUARD"
                },
                "roleDetail": {
                    "type": "string",
                    "example": "Yard"
                }
            },
            "required": [
                "empId",
                "name"
            ]
        },
        "dto.AddInmateRequest": {
            "type": "object",
            "properties": {
                "inmateId": {
                    "type": "integer",
                    "example": 1
                },
                "holdingCell": {
                    "type": "string",
                    "example": "A"
                },
                "healthNum": {
                    "type": "integer",
                    "example": 100
                },
                "startDate": {
                    "type": "string",
                    "example": "2024-01-01"
                },
                "endDate": {
                    "type": "string",
                    "example": "2024-01-10"
                }
            },
            "required": [
                "inmateId",
                "holdingCell",
                "healthNum",
                "startDate",
                "endDate"
            ]
        },
        "dto.AddMedicalRequest": {
            "type": "object",
            "properties": {
                "recordNum": {
                    "type": "integer",
                    "example": 500
                },
                "bloodType": {
                    "type": "string",
                    "example": "O+"
                },
                "weight": {
                    "type": "number",
                    "example": 72.5
                },
                "sex": {
                    "type": "string",
                    "example": "F"
                },
                "height": {
                    "type": "number",
                    "example": 165.0
                },
                "inmateId": {
                    "type": "integer",
                    "example": 1
                }
            },
            "required": [
                "recordNum",
                "bloodType",
                "weight",
                "sex",
                "height",
                "inmateId"
            ]
        },
        "dto.AddPrisonRequest": {
            "type": "object",
            "properties": {
                "prisonNum": {
                    "type": "integer",
                    "example": 1
                },
                "securityLevel": {
                    "type": "integer",
                    "example": 8
                }
            },
            "required": [
                "prisonNum",
                "securityLevel"
            ]
        },
        "dto.AddPrisonSecurityRequest": {
            "type": "object",
            "properties": {
                "securityLevel": {
                    "type": "integer",
                    "example": 8
                },
                "guardCount": {
                    "type": "integer",
                    "example": 40
                },
                "location": {
                    "type": "string",
                    "example": "North Wing"
                }
            },
            "required": [
                "securityLevel",
                "location"
            ]
        },
        "dto.AddSentenceRequest": {
            "type": "object",
            "properties": {
                "duration": {
                    "type": "integer",
                    "example": 24
                },
                "crimeName": {
                    "type": "string",
                    "example": "Fraud"
                },
                "crimeType": {
                    "type": "string",
                    "example": "Financial"
                },
                "severity": {
                    "type": "integer",
                    "example": 4
                },
                "inmateId": {
                    "type": "integer",
                    "example": 1
                }
            },
            "required": [
                "duration",
                "crimeName",
                "crimeType",
                "inmateId"
            ]
        },
        "dto.AssignEmployeeRequest": {
            "type": "object",
            "properties": {
                "prisonNum": {
                    "type": "integer",
                    "example": 1
                },
                "empId": {
                    "type": "integer",
                    "example": 10
                },
                "salary": {
                    "type": "number",
                    "example": 52000.0
                }
            },
            "required": [
                "prisonNum",
                "empId"
            ]
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string",
                    "example": "VAL_001"
                },
                "message": {
                    "type": "string",
                    "example": "inmateId is required"
                },
                "field": {
                    "type": "string",
                    "example": "inmateId"
                },
                "retryable": {
                    "type": "boolean",
                    "example": false
                },
                "details": {}
            }
        },
        "dto.HealthStatus": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "example": "ok"
                },
                "database": {
                    "type": "string",
                    "example": "connected"
                }
            }
        },
        "dto.ReduceSentenceRequest": {
            "type": "object",
            "properties": {
                "inmateId": {
                    "type": "integer",
                    "example": 1
                },
                "monthsReduced": {
                    "type": "integer",
                    "example": 6
                }
            },
            "required": [
                "inmateId",
                "monthsReduced"
            ]
        },
        "dto.RemoveCellRequest": {
            "type": "object",
            "properties": {
                "cellType": {
                    "type": "string",
                    "example": "A"
                }
            },
            "required": [
                "cellType"
            ]
        },
        "dto.RemoveInmateRequest": {
            "type": "object",
            "properties": {
                "inmateID": {
                    "type": "integer",
                    "example": 1
                }
            },
            "required": [
                "inmateID"
            ]
        },
        "dto.TransferInmateRequest": {
            "type": "object",
            "properties": {
                "inmateId": {
                    "type": "integer",
                    "example": 1
                },
                "newHoldingCell": {
                    "type": "string",
                    "example": "B"
                }
            },
            "required": [
                "inmateId",
                "newHoldingCell"
            ]
        },
        "models.Amenity": {
            "type": "object",
            "properties": {
                "amenType": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "recreation": {
                    "type": "string"
                },
                "prisonNum": {
                    "type": "integer"
                }
            }
        },
        "models.CellAssignment": {
            "type": "object",
            "properties": {
                "inmateId": {
                    "type": "integer"
                },
                "holdingCell": {
                    "type": "string"
                },
                "assignedOn": {
                    "type": "string",
                    "format": "date"
                }
            }
        },
        "models.CellCount": {
            "type": "object",
            "properties": {
                "holdingCell": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "models.Club": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "clubType": {
                    "type": "string"
                }
            }
        },
        "models.Employee": {
            "type": "object",
            "properties": {
                "empId": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "roleDetail": {
                    "type": "string"
                }
            }
        },
        "models.HighSecurityAssignment": {
            "type": "object",
            "properties": {
                "empId": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "prisonNum": {
                    "type": "integer"
                },
                "securityLevel": {
                    "type": "integer"
                },
                "location": {
                    "type": "string"
                },
                "salary": {
                    "type": "number"
                }
            }
        },
        "models.HighSeverityCell": {
            "type": "object",
            "properties": {
                "holdingCell": {
                    "type": "string"
                },
                "prisonNum": {
                    "type": "integer"
                },
                "highSeverityCount": {
                    "type": "integer"
                }
            }
        },
        "models.HoldingCell": {
            "type": "object",
            "properties": {
                "cellType": {
                    "type": "string"
                },
                "prisonNum": {
                    "type": "integer"
                }
            }
        },
        "models.Inmate": {
            "type": "object",
            "properties": {
                "inmateId": {
                    "type": "integer"
                },
                "holdingCell": {
                    "type": "string"
                },
                "healthNum": {
                    "type": "integer"
                },
                "startDate": {
                    "type": "string",
                    "format": "date"
                },
                "endDate": {
                    "type": "string",
                    "format": "date"
                }
            }
        },
        "models.InmateBasic": {
            "type": "object",
            "properties": {
                "inmateId": {
                    "type": "integer"
                },
                "holdingCell": {
                    "type": "string"
                },
                "endDate": {
                    "type": "string",
                    "format": "date"
                }
            }
        },
        "models.InmateMedical": {
            "type": "object",
            "properties": {
                "inmateId": {
                    "type": "integer"
                },
                "holdingCell": {
                    "type": "string"
                },
                "recordNum": {
                    "type": "integer"
                },
                "bloodType": {
                    "type": "string"
                },
                "weight": {
                    "type": "number"
                },
                "height": {
                    "type": "number"
                },
                "sex": {
                    "type": "string"
                }
            }
        },
        "models.InmateMedicalSentence": {
            "type": "object",
            "properties": {
                "inmateId": {
                    "type": "integer"
                },
                "holdingCell": {
                    "type": "string"
                },
                "bloodType": {
                    "type": "string"
                },
                "weight": {
                    "type": "number"
                },
                "height": {
                    "type": "number"
                },
                "crimeName": {
                    "type": "string"
                },
                "severity": {
                    "type": "integer"
                },
                "duration": {
                    "type": "integer"
                }
            }
        },
        "models.InmateRef": {
            "type": "object",
            "properties": {
                "inmateId": {
                    "type": "integer"
                },
                "holdingCell": {
                    "type": "string"
                }
            }
        },
        "models.MedicalRecord": {
            "type": "object",
            "properties": {
                "recordNum": {
                    "type": "integer"
                },
                "bloodType": {
                    "type": "string"
                },
                "weight": {
                    "type": "number"
                },
                "height": {
                    "type": "number"
                },
                "sex": {
                    "type": "string"
                },
                "inmateId": {
                    "type": "integer"
                }
            }
        },
        "models.Prison": {
            "type": "object",
            "properties": {
                "prisonNum": {
                    "type": "integer"
                },
                "securityLevel": {
                    "type": "integer"
                }
            }
        },
        "models.PrisonSecurity": {
            "type": "object",
            "properties": {
                "securityLevel": {
                    "type": "integer"
                },
                "guardCount": {
                    "type": "integer"
                },
                "location": {
                    "type": "string"
                }
            }
        },
        "models.Sentence": {
            "type": "object",
            "properties": {
                "sentenceId": {
                    "type": "integer"
                },
                "duration": {
                    "type": "integer"
                },
                "crimeName": {
                    "type": "string"
                },
                "crimeType": {
                    "type": "string"
                },
                "severity": {
                    "type": "integer"
                },
                "inmateId": {
                    "type": "integer"
                }
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
	Title:            "Prison Admin API",
	Description:      "Administration API over the prison database: inmate records, sentences, medical data, facilities, staff and analytical reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
