// Package signal provides deterministic synthetic signals (sine, white
// noise, linear sweep) for exercising and verifying the EQ pipeline.
package signal
