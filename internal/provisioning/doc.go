// Package provisioning drives the node lifecycle: it takes a named node
// from absent to ready (launch, network attachment, scheduler address
// registration) and tears nodes down on request.
//
// Each StartNode call is one independent task; many run concurrently,
// one per node being started, with no shared locks. The provisioning
// sequence for a single node:
//
//	ABSENT -> LAUNCHING -> NETWORK_PENDING -> READY
//
// with benign no-op exits when another actor already owns the node's
// lifecycle, and logged aborts when the provider rejects the launch.
package provisioning
