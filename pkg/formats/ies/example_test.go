package ies_test

import (
	"fmt"

	"github.com/matzehuels/lidkit/pkg/formats/ies"
)

func ExampleParse() {
	doc, err := ies.Parse(`IESNA:LM-63-2002
[TEST] 1234
[MANUFAC] Example Lighting
TILT=NONE
1 -1 1 3 3 1 2 0 0 0
1 1 0
0 90 180
0 90 180
300 150 0
300 120 0
300 90 0
`)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	manufacturer, _ := doc.Keywords.Get("MANUFAC")
	fmt.Println(doc.Standard, manufacturer)
	fmt.Println(doc.PhotometricType, doc.AbsolutePhotometry())

	web := doc.Web()
	fmt.Println(web.NPlanes(), web.Plane(3).Intensities)
	// Output:
	// LM-63-2002 Example Lighting
	// C true
	// 4 [300 120 0]
}
