package models

// descriptor describes what created the document as well as surrounding metadata
type descriptor struct {
	Name              string      `json:"name"`
	Version           string      `json:"version"`
	ID                string      `json:"id"`
	Timestamp         string      `json:"timestamp"`
	Responsible       string      `json:"responsible,omitempty"`
	Publication       string      `json:"publication,omitempty"`
	ConfigFingerprint string      `json:"configFingerprint"`
	InventorySize     int         `json:"inventorySize"`
	RuleCount         int         `json:"ruleCount"`
	Configuration     interface{} `json:"configuration,omitempty"`
}
