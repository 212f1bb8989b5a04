// Package service provides the read services behind the content API.
//
// Services validate page requests, resolve sorting against the allow-list,
// call the stores, and translate an absent post into ErrPostNotFound. They
// hold no state of their own and are safe for concurrent use.
package service
