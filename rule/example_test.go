package rule_test

import (
	"fmt"

	"github.com/katalvlaran/collapse/rule"
)

func ExampleParse() {
	r, err := rule.Parse("Forest+[^Reef>(Desert|Mountain+Cliff|Jungle)]|(Sand|Grass)")
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}

	fmt.Println(rule.Match(r, rule.Simple{Token: "Sand"}))
	fmt.Println(rule.Match(r, rule.Simple{Token: "Forest"}))
	// Output:
	// true
	// false
}
