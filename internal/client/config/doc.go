// Package config loads runtime configuration for the DomUnity CLI.
//
// Sources, lowest precedence first: built-in defaults, an optional JSON file
// named by -c or -config, then the -a, -f and -i flags.
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "database_path": "domunity-cli.db",
//	  "request_timeout": "10s"
//	}
package config
