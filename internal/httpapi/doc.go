// Package httpapi serves the account-management HTTP surface.
//
// Two JSON endpoints, POST /create_user and POST /delete_user, plus
// OPTIONS preflight on both. Every response carries the fixed CORS
// headers the web client expects, and every request terminates with a
// response: typed directory errors map to 400, anything else to 500
// with the error text echoed back.
package httpapi
