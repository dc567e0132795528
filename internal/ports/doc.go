// Package ports holds the interfaces between the layers. PageAdminService is
// what the HTTP handlers call; PageTree is what the application needs from a
// page store, implemented by memstore, sqlite and the CMS client.
package ports
