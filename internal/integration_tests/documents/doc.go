// Package documents holds integration tests that push CPF and CNPJ values
// through real Postgres and Redis clients. Run with -tags integration.
package documents
