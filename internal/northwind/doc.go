// Package northwind provides a typed HTTP client for the Northwind demo
// query API, along with the wire types it returns. List endpoints accept
// JSON query bodies (skip/take/orderBy/filters) and return pages; the
// customer detail endpoint returns the full customer aggregate in one
// request. The client is read-only.
package northwind
