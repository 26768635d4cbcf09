// Package pkg holds the lidkit libraries for reading, transforming and
// drawing luminaire photometry.
//
// # Overview
//
// Every supported file format is parsed into its own document type and then
// expanded into a [photweb.Web]: a ring of C-planes, each sampling the
// luminous intensity over a range of vertical angles. Everything downstream
// (averaging, export, charts, the catalog) works on webs only.
//
//  1. [geom] - degree/radian helpers and angle ranges
//  2. [photweb] - planes, webs, symmetry mirroring and integration
//  3. [formats] - IES LM-63 and EULUMDAT readers and writers, format detection
//  4. [ops] - operations over several webs (averaging)
//  5. [io] - JSON and YAML documents for webs
//  6. [render] - polar curve charts and plane ring diagrams
//  7. [pipeline] - cached load → average → render flow shared by CLI and API
//  8. [catalog] - SQLite index of parsed luminaires
//  9. [server] - HTTP API over the pipeline and catalog
//
// Supporting packages: [cache] (file and Redis result caches), [config]
// (TOML configuration), [errors] (coded, positioned errors),
// [observability] (event hooks) and [buildinfo].
//
// # Quick Start
//
//	web, err := formats.Read("downlight.ies")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(web.NPlanes(), web.TotalIntensity())
//
//	avg, err := ops.Average(web, other)
//	err = formats.Write(avg, "average.ldt")
package pkg
