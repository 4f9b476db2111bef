package config

// Schema is the JSON schema for validating a rendered deploy configuration
const Schema = `{
    "$schema": "http://json-schema.org/draft-07/schema#",
    "type": "object",
    "definitions": {
        "region": {
            "type": "string",
            "const": "us-east-1"
        },
        "bucket": {
            "type": "string",
            "minLength": 3,
            "maxLength": 63,
            "pattern": "^[a-z0-9][a-z0-9.-]*[a-z0-9]$"
        }
    },
    "properties": {
        "build": {
            "type": "object",
            "properties": {
                "region": {"$ref": "#/definitions/region"},
                "bucket": {"$ref": "#/definitions/bucket"},
                "environment": {
                    "type": "string",
                    "enum": ["development", "production"]
                }
            },
            "required": ["region", "bucket"]
        },
        "s3": {
            "type": "object",
            "properties": {
                "region": {"$ref": "#/definitions/region"},
                "bucket": {"$ref": "#/definitions/bucket"}
            },
            "required": ["region", "bucket"]
        },
        "s3-index": {
            "type": "object",
            "properties": {
                "allowOverwrite": {
                    "type": "boolean",
                    "const": true
                },
                "region": {"$ref": "#/definitions/region"},
                "bucket": {"$ref": "#/definitions/bucket"}
            },
            "required": ["allowOverwrite", "region", "bucket"]
        }
    },
    "required": ["build", "s3", "s3-index"]
}`
