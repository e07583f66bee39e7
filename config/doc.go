// Package config loads container parameters from a configuration file, a
// .env file and prefixed environment variables.
//
// Keys are flattened with "." separators and lower cased, so a YAML document
//
//	database:
//	  dsn: postgres://localhost
//	aliases:
//	  dsn: database.dsn
//
// yields the parameter "database.dsn" and the alias "dsn". With the prefix
// "OMNI", the environment variable OMNI_DATABASE_DSN overrides the same
// parameter.
package config
