// Package loader reads and writes graph description files.
//
// The on-disk layout is the one the benchmark fixtures have always used:
//
//	{
//	  "graphName": "SmallGraph_1",
//	  "number_OF_Edge_and_Vertices": "Vertices: 4, Edges: 4",
//	  "edges": [
//	    {"source": "A", "destination": "B", "weight": 1}
//	  ]
//	}
//
// The same document may be stored as YAML. Either form may be gzip-compressed; a
// trailing ".gz" selects transparent (de)compression. The loader is the only place
// malformed input is rejected: every graph it returns has passed core.Graph.Validate.
package loader
