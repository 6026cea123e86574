package platform

// Package platform contains OS integration glue: filesystem helpers, locating
// bundled data beside the executable and opening links in the system browser.
