// Package models defines the core domain models for CommonSpace.
//
// # Models
//
//   - User: registered account, identified across the app by e-mail
//   - Household: a flat, identified by its shared flat code (ABC-DEF-GHI)
//   - Expense: a shared purchase paid by one member and split equally
//   - Settlement: a real-world payment between two members
//
// # Design Principles
//
// 1. **Household scope**: expenses and settlements carry the flat code they belong to
// 2. **E-mail as person identifier**: paid_by, split_between, from_user and to_user hold member e-mails
// 3. **Avoid circular references**: use ID strings instead of pointers for relationships
// 4. **Decimal money**: amounts use shopspring/decimal, never float64
package models
