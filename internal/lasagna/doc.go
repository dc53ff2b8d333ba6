// Package lasagna estimates lasagna cooking times.
//
// Every function is a pure computation over minutes: no state is kept and
// inputs are never validated, so negative or zero values flow straight
// through the arithmetic. A negative remaining time simply means the dish
// has been in the oven longer than expected.
package lasagna
