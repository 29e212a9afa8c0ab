// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// ssllabs-mcp serves the SSL Labs assessment tools over the Model Context
// Protocol on stdio.
//
// Configuration comes from the file named by SSLLABS_CONFIG_FILE and the
// SSLLABS_* environment variables. Set SSLLABS_DEBUG=on to log requests to
// stderr.
//
// Example client entry:
//
//	{
//	  "mcpServers": {
//	    "ssllabs": {
//	      "command": "ssllabs-mcp",
//	      "env": {"SSLLABS_CONFIG_FILE": "/etc/ssllabs/config.yaml"}
//	    }
//	  }
//	}
package main
