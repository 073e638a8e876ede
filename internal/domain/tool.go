package domain

// Tool describes an operation exposed by the MCP server.
// It mirrors what is registered with the transport so other parts of the
// system (the health report, the admin API) can enumerate the tools without
// reaching into the server library.
type Tool struct {
	// Name is the tool name as seen by MCP clients, e.g. "assess_vendor_risk".
	// It MUST be unique within the server.
	Name string `json:"name"`

	// Description is the natural language explanation shown to the LLM.
	Description string `json:"description"`

	// Arguments lists the argument names in declaration order.
	Arguments []string `json:"arguments,omitempty"`
}

// Signature renders the tool as "name(arg1, arg2)".
func (t Tool) Signature() string {
	sig := t.Name + "("
	for i, arg := range t.Arguments {
		if i > 0 {
			sig += ", "
		}
		sig += arg
	}
	return sig + ")"
}
