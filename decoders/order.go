package decoders

// init wires the default dispatch order into Registry. Order is a
// contract: more specific decoders must precede more general ones whose
// preamble they could also satisfy. It is built here, explicitly, in a
// single init rather than scattered per-decoder-file init functions, so
// the order does not depend on the Go compiler's (filename-driven)
// init-execution order across files.
func init() {
	Registry = []Decoder{
		toyotaPMV107J{},
		elantra2012Civic{},
		bmwGen45Audi{},
		bmwGen23{},
		porsche987{},
		schraderSMD3MA4{},
		gmAftermarket{},
		renault{},
		toyotaEU{},
		schraderGen1{},
		schraderEG53MA4{},
		citroen{},
		ford{},
		hyundaiKia{},
	}
}
