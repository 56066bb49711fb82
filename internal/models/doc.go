// Package models defines the core domain models for Settleflow.
//
// # Current Models
//
//   - Group: a set of members who share expenses
//   - Expense: a cost paid by one member and split equally across the group
//   - Settlement: a recorded payment between two members that clears debt
//   - User: a registered account used for authentication
//
// Group members are opaque address strings. The settlement math in
// internal/calculator only ever compares them for equality; display names
// and avatars belong to the presentation layer, not here.
//
// # Design Principles
//
//  1. Members are identifiers, not rich entities: richer identity can be
//     layered on via User accounts without touching the settlement core
//  2. Avoid circular references: relationships use ID strings, not pointers
//  3. Timestamps are Unix seconds, assigned by the storage layer
package models
