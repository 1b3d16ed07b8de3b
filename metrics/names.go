// Package metrics counts the requests handled by the names service and
// serves them to prometheus.
package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

var (
	claimsCounter = prom.NewCounterVec(prom.CounterOpts{
		Name: "names_claims_total",
		Help: "Claims handled, by approval path and result code.",
	}, []string{"path", "code"})
	recordOpsCounter = prom.NewCounterVec(prom.CounterOpts{
		Name: "names_record_ops_total",
		Help: "Record operations handled, by operation and result code.",
	}, []string{"op", "code"})
	proofsCounter = prom.NewCounterVec(prom.CounterOpts{
		Name: "names_proofs_total",
		Help: "Accepted address bindings, by verification mode.",
	}, []string{"mode"})
)

func init() {
	prom.MustRegister(claimsCounter)
	prom.MustRegister(recordOpsCounter)
	prom.MustRegister(proofsCounter)
}

// CodeOK labels successful requests.
const CodeOK = "OK"

func ClaimHandled(path, code string) {
	claimsCounter.WithLabelValues(path, code).Inc()
}

func RecordOpHandled(op, code string) {
	recordOpsCounter.WithLabelValues(op, code).Inc()
}

func ProofAccepted(mode string) {
	proofsCounter.WithLabelValues(mode).Inc()
}
