// Package docs registra en swag el documento OpenAPI que sirve /swagger/doc.json.
// Se mantiene a mano en el formato de swag init; docs_test.go verifica que cada
// anotación @Router de los handlers tenga su operación acá.
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
        "/api/owners": {
            "get": {
                "description": "Devuelve todos los owners con sus mascotas. Con last_name filtra por prefijo (sin distinguir mayúsculas).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "owners"
                ],
                "summary": "Listar owners",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Prefijo del apellido",
                        "name": "last_name",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/clinic.ownerResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "owners"
                ],
                "summary": "Crear owner",
                "parameters": [
                    {
                        "description": "Datos del owner",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/clinic.ownerRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/clinic.ownerResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / campo faltante o demasiado largo",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api/owners/{ownerID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "owners"
                ],
                "summary": "Obtener owner",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del owner",
                        "name": "ownerID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/clinic.ownerResponse"
                        }
                    },
                    "404": {
                        "description": "owner not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "delete": {
                "description": "Borra al owner junto con sus mascotas y visitas.",
                "tags": [
                    "owners"
                ],
                "summary": "Borrar owner",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del owner",
                        "name": "ownerID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "owner not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api/owners/{ownerID}/pets": {
            "post": {
                "description": "El nombre no puede repetirse dentro del mismo owner (comparación sin distinguir mayúsculas). El tipo se resuelve por type_id.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "owners"
                ],
                "summary": "Agregar mascota a un owner",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID del owner",
                        "name": "ownerID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Datos de la mascota; birth_date en formato YYYY-MM-DD",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/clinic.petRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/clinic.petResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / tipo inexistente",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "owner not found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "409": {
                        "description": "pet name already exists for owner",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api/pets/{petID}": {
            "put": {
                "description": "Reemplaza nombre, fecha de nacimiento y tipo. El dueño no cambia.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pets"
                ],
                "summary": "Actualizar mascota",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Datos de la mascota",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/clinic.petRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/clinic.petResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / tipo inexistente",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api/pets/{petID}/visits": {
            "post": {
                "description": "Registra una visita para la mascota. Si no viene date se usa la fecha de hoy (UTC).",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "visits"
                ],
                "summary": "Registrar visita",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la mascota",
                        "name": "petID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Datos de la visita",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/clinic.visitRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/clinic.visitResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / fecha inválida",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "pet not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api/pettypes": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pettypes"
                ],
                "summary": "Listar tipos de mascota",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/clinic.namedResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/specialties/{specialtyID}": {
            "delete": {
                "description": "La especialidad se desvincula de los veterinarios que la tenían.",
                "tags": [
                    "specialties"
                ],
                "summary": "Borrar especialidad",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID de la especialidad",
                        "name": "specialtyID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "specialty not found",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api/vets": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vets"
                ],
                "summary": "Listar veterinarios",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/clinic.vetResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "description": "Las especialidades se resuelven por id; un id inexistente devuelve 400.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vets"
                ],
                "summary": "Crear veterinario",
                "parameters": [
                    {
                        "description": "Datos del veterinario",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/clinic.vetRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/clinic.vetResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / especialidad inexistente",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "clinic.namedResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "clinic.ownerRequest": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "first_name": {
                    "type": "string"
                },
                "last_name": {
                    "type": "string"
                },
                "telephone": {
                    "type": "string"
                }
            }
        },
        "clinic.ownerResponse": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "first_name": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "last_name": {
                    "type": "string"
                },
                "pets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/clinic.petResponse"
                    }
                },
                "telephone": {
                    "type": "string"
                }
            }
        },
        "clinic.petRequest": {
            "type": "object",
            "properties": {
                "birth_date": {
                    "type": "string",
                    "description": "YYYY-MM-DD opcional"
                },
                "name": {
                    "type": "string"
                },
                "type_id": {
                    "type": "integer"
                }
            }
        },
        "clinic.petResponse": {
            "type": "object",
            "properties": {
                "birth_date": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "owner_id": {
                    "type": "integer"
                },
                "type": {
                    "$ref": "#/definitions/clinic.namedResponse"
                },
                "visits": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/clinic.visitResponse"
                    }
                }
            }
        },
        "clinic.vetRequest": {
            "type": "object",
            "properties": {
                "first_name": {
                    "type": "string"
                },
                "last_name": {
                    "type": "string"
                },
                "specialty_ids": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "clinic.vetResponse": {
            "type": "object",
            "properties": {
                "first_name": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "last_name": {
                    "type": "string"
                },
                "specialties": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/clinic.namedResponse"
                    }
                }
            }
        },
        "clinic.visitRequest": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "description": "YYYY-MM-DD; vacío = hoy"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "clinic.visitResponse": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "pet_id": {
                    "type": "integer"
                }
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
	Title:            "Pet Clinic API",
	Description:      "Owners, mascotas, visitas y veterinarios de la clínica.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
