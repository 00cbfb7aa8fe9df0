// Package cli provides the interactive EMS desk terminal client.
//
// It wires configuration, the local session database, the API services and
// a REPL whose commands stand in for the screens of the web front-end.
// Every command is bound to a navigation.Route and passes the route guard
// before it runs. Typical flow: restore or create a session, land on the
// screen chosen by the user's roles, and execute commands until exit.
//
// Key features:
//   - Login / Logout with a persisted session and 401 handling
//   - Employees, documents (upload, preview, expiry filters, reports)
//   - Leave requests and approvals, attendance, rotas
//   - Notifications with a background unread-count poller
//   - Tenant settings (departments, SMTP, alerts) and ROOT organization admin
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
