// Package domain holds the core vocabulary of framepub: the delivery
// scenarios a send can exercise and the error taxonomy shared across the
// simulator, the session driver, and the adapters.
package domain
