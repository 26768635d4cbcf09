// Package io exports photometric webs to JSON and YAML and reads them back.
//
// # Format
//
// A document carries an ID, its source and a snapshot of every plane:
//
//	{
//	  "id": "0b9f...",
//	  "source": "downlight.ies",
//	  "format": "ies",
//	  "spherical": false,
//	  "total_intensity": 3141.6,
//	  "planes": [
//	    {"angle": 0, "width": [22.5, 22.5], "angles": [0, 45, 90], "intensities": [100, 70, 0]}
//	  ]
//	}
//
// Angles are in degrees. Width, total and maximum intensity are written
// for readers that do not integrate; [Document.Web] recomputes them.
//
// Use [Export] and [Import] for files; the encoding follows the extension
// (.json, .yaml, .yml). [Write] and [Read] work on streams.
package io
