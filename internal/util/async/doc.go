// Package async provides utilities for parallel task execution with
// error collection.
//
// [RunParallel] and [Collect] start every task at once, wait for all of them,
// and report the first failure in submission order. Tasks are never cancelled
// because a sibling failed. [ForEach] builds one task per item.
package async
