/*
Package vulnerability describes the newly disclosed vulnerabilities that are triaged in a batch.
*/
package vulnerability

import "fmt"

// Vulnerability is a single row of the incoming vulnerability table. Product is the free-text vendor and product
// description that is matched against the inventory and the override rules.
type Vulnerability struct {
	Number    string `json:"number"`
	CVE       string `json:"cve"`
	CVSS      string `json:"cvss"`
	Product   string `json:"product"`
	SourceURL string `json:"sourceUrl,omitempty"`
}

func (v Vulnerability) String() string {
	return fmt.Sprintf("Vulnerability(number=%q cve=%q product=%q)", v.Number, v.CVE, v.Product)
}
