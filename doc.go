// Package nodly provides a generic, composable node execution engine.
//
// Node trees execute against a shared, typed subject: leaf actions perform
// work, pipelines run children sequentially with short-circuit on failure,
// groups fan children out concurrently and transitions bridge into subtrees
// of a different subject type. Execution never panics and never throws across
// composition boundaries - every outcome lands on a result tree.
//
// Trees are either composed programmatically or resolved from declarative
// flow definitions (YAML) against registered node kinds and predicates.
// End-users typically interact with the engine via the Service façade exposed
// by this package:
//
//	srv, _ := nodly.New[*Order]()
//	srv.RegisterNode("billing", "", newChargeNode)
//	rt := srv.Runtime()
//	_, _ = rt.LoadFlow(ctx, "checkout.yaml")
//	result, _ := rt.Execute(ctx, "checkout", order)
//
// For more details see the README and individual sub-packages.
package nodly
