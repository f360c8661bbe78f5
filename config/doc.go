/*
Package config loads the registry's backend configuration.

Sources are applied in order, each overriding the previous one:

  - Default()
  - an optional YAML or TOML file
  - .env files (github.com/joho/godotenv; variables already set win)
  - environment variables (github.com/caarlos0/env)

Environment variables:

	ALIASSTORE_BACKEND       memory | sqlite | dynamodb
	ALIASSTORE_SQLITE_PATH   SQLite database file
	AWS_REGION               DynamoDB region
	AWS_DDB_TABLE            DynamoDB table name
	AWS_ACCESS_KEY           static credentials (optional)
	AWS_SECRET_KEY
	AWS_DDB_ENDPOINT         endpoint override, e.g. http://localhost:8000

Example YAML file:

	backend: dynamodb
	dynamodb:
	  region: eu-west-1
	  table: aliases
*/
package config
