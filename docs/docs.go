// Package docs holds the generated swagger definition registered with
// swag. Regenerate with `swag init` after changing handler annotations.
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
        "/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["generator"],
                "summary": "Render a platform template",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/generate/use-case": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["generator"],
                "summary": "Render a use-case template",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/registry": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Full catalog export",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/templates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "List custom templates",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Save a custom template",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/templates/preview": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Preview a template with sample data",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/templates/synthesize": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["templates"],
                "summary": "Synthesize a template from components",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "promptstudio-backend API",
	Description:      "Prompt-generation engine and client-collection storage for PromptWritingStudio.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
