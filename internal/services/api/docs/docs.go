// Package docs holds the OpenAPI document served at /api/docs.
// Regenerate with swag when handler annotations change.
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
	"openapi": "3.0.3",
	"info": {
		"title": {{ marshal .Title }},
		"description": "{{escape .Description}}",
		"version": {{ marshal .Version }}
	},
	"paths": {
		"/layoffs/records": {
			"post": {
				"tags": [
					"Layoffs"
				],
				"summary": "Filtered layoff records",
				"operationId": "layoffsRecords",
				"description": "Records matching the filter, newest first, localized for display",
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/layoffs.RecordsInput"
							}
						}
					}
				},
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/projection.CardsView"
								}
							}
						}
					}
				}
			}
		},
		"/layoffs/aggregate": {
			"post": {
				"tags": [
					"Layoffs"
				],
				"summary": "Chart series",
				"operationId": "layoffsAggregate",
				"description": "Affected employees of the filtered records grouped by mode",
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/layoffs.AggregateInput"
							}
						}
					}
				},
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/projection.ChartView"
								}
							}
						}
					}
				}
			}
		},
		"/layoffs/totals": {
			"post": {
				"tags": [
					"Layoffs"
				],
				"summary": "Confirmed and potential totals",
				"operationId": "layoffsTotals",
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/layoffs.TotalsInput"
							}
						}
					}
				},
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/projection.TotalsView"
								}
							}
						}
					}
				}
			}
		},
		"/layoffs/options": {
			"get": {
				"tags": [
					"Layoffs"
				],
				"summary": "Dropdown options",
				"operationId": "layoffsOptions",
				"parameters": [
					{
						"name": "country",
						"in": "query",
						"required": false,
						"schema": {
							"type": "string"
						},
						"example": "Romania"
					},
					{
						"name": "lang",
						"in": "query",
						"required": false,
						"schema": {
							"type": "string",
							"enum": [
								"en",
								"ro"
							]
						},
						"example": "ro"
					}
				],
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/layoffs.OptionsView"
								}
							}
						}
					}
				}
			}
		},
		"/layoffs/translations/{lang}": {
			"get": {
				"tags": [
					"Layoffs"
				],
				"summary": "Translation table",
				"operationId": "layoffsTranslations",
				"parameters": [
					{
						"name": "lang",
						"in": "path",
						"required": true,
						"schema": {
							"type": "string"
						},
						"example": "en"
					}
				],
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/layoffs.TranslationsView"
								}
							}
						}
					}
				}
			}
		},
		"/layoffs/dataset": {
			"get": {
				"tags": [
					"Layoffs"
				],
				"summary": "Dataset load status",
				"operationId": "layoffsDataset",
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/dataset.Status"
								}
							}
						}
					}
				}
			}
		},
		"/preferences/language": {
			"get": {
				"tags": [
					"Preferences"
				],
				"summary": "Preferred display language",
				"operationId": "prefLanguage",
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/preferences.LanguageView"
								}
							}
						}
					}
				}
			},
			"put": {
				"tags": [
					"Preferences"
				],
				"summary": "Store the display language",
				"operationId": "prefSetLanguage",
				"requestBody": {
					"required": true,
					"content": {
						"application/json": {
							"schema": {
								"$ref": "#/components/schemas/preferences.SetLanguageInput"
							}
						}
					}
				},
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/preferences.LanguageView"
								}
							}
						}
					}
				}
			}
		},
		"/meta/health": {
			"get": {
				"tags": [
					"Meta"
				],
				"summary": "Health check",
				"operationId": "metaHealth",
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/meta.HealthResponse"
								}
							}
						}
					}
				}
			}
		},
		"/meta/ready": {
			"get": {
				"tags": [
					"Meta"
				],
				"summary": "Readiness probe with dependency checks",
				"operationId": "metaReady",
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/meta.ReadyResponse"
								}
							}
						}
					}
				}
			}
		},
		"/meta/version": {
			"get": {
				"tags": [
					"Meta"
				],
				"summary": "Build and version info",
				"operationId": "metaVersion",
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/version.BuildInfo"
								}
							}
						}
					}
				}
			}
		},
		"/meta/service": {
			"get": {
				"tags": [
					"Meta"
				],
				"summary": "Service info and uptime",
				"operationId": "metaService",
				"responses": {
					"200": {
						"description": "ok",
						"content": {
							"application/json": {
								"schema": {
									"$ref": "#/components/schemas/meta.ServiceResponse"
								}
							}
						}
					}
				}
			}
		}
	},
	"components": {
		"schemas": {
			"layoffs.Filter": {
				"type": "object",
				"properties": {
					"country": {
						"type": "string",
						"example": "Romania"
					},
					"location": {
						"type": "string",
						"example": "Cluj"
					},
					"year": {
						"type": "string",
						"example": "2024",
						"pattern": "^[0-9]{4}$"
					},
					"category": {
						"type": "string",
						"example": "Technology"
					},
					"compensation": {
						"type": "string",
						"enum": [
							"with",
							"without"
						]
					},
					"search": {
						"type": "string",
						"maxLength": 200,
						"example": "bank"
					}
				}
			},
			"layoffs.RecordsInput": {
				"type": "object",
				"properties": {
					"filter": {
						"$ref": "#/components/schemas/layoffs.Filter"
					},
					"lang": {
						"type": "string",
						"example": "en"
					}
				}
			},
			"layoffs.AggregateInput": {
				"type": "object",
				"properties": {
					"filter": {
						"$ref": "#/components/schemas/layoffs.Filter"
					},
					"mode": {
						"type": "string",
						"enum": [
							"month",
							"year",
							"year_total",
							"category",
							"location",
							"company"
						]
					},
					"lang": {
						"type": "string",
						"example": "ro"
					}
				},
				"required": [
					"mode"
				]
			},
			"layoffs.TotalsInput": {
				"type": "object",
				"properties": {
					"filter": {
						"$ref": "#/components/schemas/layoffs.Filter"
					},
					"lang": {
						"type": "string",
						"example": "ro"
					},
					"scope": {
						"type": "string",
						"enum": [
							"all",
							"filtered"
						]
					}
				}
			},
			"layoffs.OptionsView": {
				"type": "object",
				"properties": {
					"countries": {
						"type": "array",
						"items": {
							"type": "string"
						}
					},
					"locations": {
						"type": "array",
						"items": {
							"type": "string"
						}
					},
					"years": {
						"type": "array",
						"items": {
							"type": "string"
						}
					},
					"categories": {
						"type": "array",
						"items": {
							"type": "string"
						}
					},
					"modes": {
						"type": "array",
						"items": {
							"type": "string"
						}
					},
					"lang": {
						"type": "string"
					}
				}
			},
			"layoffs.TranslationsView": {
				"type": "object",
				"properties": {
					"lang": {
						"type": "string"
					},
					"table": {
						"type": "object",
						"additionalProperties": {
							"type": "string"
						}
					}
				}
			},
			"dataset.Status": {
				"type": "object",
				"properties": {
					"source": {
						"type": "string",
						"example": "embedded"
					},
					"count": {
						"type": "integer",
						"example": 412
					},
					"loaded_at": {
						"type": "string",
						"format": "date-time"
					},
					"error": {
						"type": "string"
					}
				}
			},
			"layoff.Source": {
				"type": "object",
				"properties": {
					"url": {
						"type": "string"
					},
					"name": {
						"type": "string"
					}
				}
			},
			"projection.CompensationView": {
				"type": "object",
				"properties": {
					"severance_pay": {
						"type": "boolean"
					},
					"severance_months": {
						"type": "number"
					},
					"bonus_package": {
						"type": "boolean"
					},
					"bonus_amount": {
						"type": "string"
					},
					"support": {
						"type": "boolean"
					},
					"support_details": {
						"type": "string"
					},
					"lines": {
						"type": "array",
						"items": {
							"type": "string"
						}
					}
				}
			},
			"projection.RecordView": {
				"type": "object",
				"properties": {
					"company": {
						"type": "string"
					},
					"date": {
						"type": "string"
					},
					"date_label": {
						"type": "string"
					},
					"employees_affected": {
						"type": "integer"
					},
					"affected_label": {
						"type": "string"
					},
					"employees_potential": {
						"type": "integer"
					},
					"is_potential": {
						"type": "boolean"
					},
					"status": {
						"type": "string"
					},
					"location": {
						"type": "string"
					},
					"county": {
						"type": "string"
					},
					"country": {
						"type": "string"
					},
					"category": {
						"type": "string"
					},
					"total_employees": {
						"type": "integer"
					},
					"total_group_employees": {
						"type": "integer"
					},
					"local_percentage": {
						"type": "number"
					},
					"group_percentage": {
						"type": "number"
					},
					"notes": {
						"type": "string"
					},
					"compensation": {
						"$ref": "#/components/schemas/projection.CompensationView"
					},
					"sources": {
						"type": "array",
						"items": {
							"$ref": "#/components/schemas/layoff.Source"
						}
					}
				}
			},
			"projection.CardsView": {
				"type": "object",
				"properties": {
					"count": {
						"type": "integer"
					},
					"count_label": {
						"type": "string"
					},
					"items": {
						"type": "array",
						"items": {
							"$ref": "#/components/schemas/projection.RecordView"
						}
					},
					"empty": {
						"type": "boolean"
					},
					"empty_message": {
						"type": "string"
					}
				}
			},
			"projection.ChartView": {
				"type": "object",
				"properties": {
					"mode": {
						"type": "string"
					},
					"title": {
						"type": "string"
					},
					"label": {
						"type": "string"
					},
					"labels": {
						"type": "array",
						"items": {
							"type": "string"
						}
					},
					"values": {
						"type": "array",
						"items": {
							"type": "integer"
						}
					},
					"colors": {
						"type": "array",
						"items": {
							"type": "string"
						}
					},
					"total": {
						"type": "integer"
					},
					"total_label": {
						"type": "string"
					}
				}
			},
			"projection.Counter": {
				"type": "object",
				"properties": {
					"title": {
						"type": "string"
					},
					"value": {
						"type": "integer"
					},
					"label": {
						"type": "string"
					}
				}
			},
			"projection.YearRow": {
				"type": "object",
				"properties": {
					"year": {
						"type": "string"
					},
					"confirmed": {
						"type": "integer"
					},
					"confirmed_label": {
						"type": "string"
					},
					"potential": {
						"type": "integer"
					},
					"potential_label": {
						"type": "string"
					}
				}
			},
			"projection.TotalsView": {
				"type": "object",
				"properties": {
					"confirmed": {
						"$ref": "#/components/schemas/projection.Counter"
					},
					"potential": {
						"$ref": "#/components/schemas/projection.Counter"
					},
					"affected": {
						"$ref": "#/components/schemas/projection.Counter"
					},
					"years": {
						"type": "array",
						"items": {
							"$ref": "#/components/schemas/projection.YearRow"
						}
					}
				}
			},
			"preferences.LanguageView": {
				"type": "object",
				"properties": {
					"client_id": {
						"type": "string",
						"format": "uuid"
					},
					"lang": {
						"type": "string"
					},
					"stored": {
						"type": "boolean"
					}
				}
			},
			"preferences.SetLanguageInput": {
				"type": "object",
				"properties": {
					"lang": {
						"type": "string",
						"example": "en"
					}
				},
				"required": [
					"lang"
				]
			},
			"meta.HealthResponse": {
				"type": "object",
				"properties": {
					"ok": {
						"type": "boolean"
					},
					"service": {
						"type": "string"
					},
					"started": {
						"type": "string"
					},
					"now": {
						"type": "string"
					}
				}
			},
			"meta.ReadyCheck": {
				"type": "object",
				"properties": {
					"name": {
						"type": "string"
					},
					"status": {
						"type": "string",
						"enum": [
							"ok",
							"fail",
							"skipped"
						]
					},
					"error": {
						"type": "string"
					}
				}
			},
			"meta.ReadyResponse": {
				"type": "object",
				"properties": {
					"status": {
						"type": "string",
						"enum": [
							"ok",
							"degraded",
							"fail"
						]
					},
					"checks": {
						"type": "array",
						"items": {
							"$ref": "#/components/schemas/meta.ReadyCheck"
						}
					},
					"now": {
						"type": "string"
					}
				}
			},
			"meta.ServiceResponse": {
				"type": "object",
				"properties": {
					"name": {
						"type": "string"
					},
					"started": {
						"type": "string"
					},
					"uptime": {
						"type": "integer"
					}
				}
			},
			"version.BuildInfo": {
				"type": "object",
				"properties": {
					"service": {
						"type": "string"
					},
					"version": {
						"type": "string"
					},
					"commit": {
						"type": "string"
					},
					"date": {
						"type": "string"
					},
					"go_version": {
						"type": "string"
					},
					"dirty": {
						"type": "boolean"
					}
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Title:            "Layoffs API",
	Description:      "Filtered, aggregated and localized views over the layoff dataset",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
