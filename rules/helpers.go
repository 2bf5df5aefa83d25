// SPDX-License-Identifier: MIT
//
// File: helpers.go
// Role: shared plumbing for the imperative Appliers below.
package rules

import "github.com/sorawee/isaforge/egraph"

// listIDs fetches the List payload bound to a pattern variable, erroring as
// a TypeFault if that eclass does not carry a List payload.
func listIDs(eg *egraph.EGraph, subst egraph.Subst, name string) ([]egraph.Id, error) {
	id, ok := subst[name]
	if !ok {
		return nil, egraph.ErrUnboundVar
	}
	class, err := eg.Class(id)
	if err != nil {
		return nil, err
	}
	payload := class.Payload()
	if payload.Kind != egraph.PayloadList {
		return nil, &egraph.TypeFault{Reason: name + " is not bound to a list"}
	}
	return payload.List, nil
}
