// Package config loads the coat.json file used by the coat command.
//
// A missing file is not an error: every field has a default. Command line
// flags override file values.
//
// # Configuration File Structure
//
//	{
//	  "inspector": {
//	    "enabled": true,
//	    "addr": "localhost:7070"
//	  },
//	  "metrics": {
//	    "namespace": "coat"
//	  },
//	  "log": {
//	    "level": "info"
//	  },
//	  "demo": {
//	    "passes": 5,
//	    "interval": "500ms"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
