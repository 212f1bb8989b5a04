// Package domain contains the read models of the blog (posts, tags and
// their authors), the page request that drives listings, and the errors
// shared by the layers above it. It has no knowledge of storage or HTTP.
package domain
