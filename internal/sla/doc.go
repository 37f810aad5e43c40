// Package sla holds the pure date and SLA arithmetic: parsing and masking of
// DD/MM/YYYY display dates, timestamp rendering in the fixed display zone, and
// the signed day variance between a due date and a delivery date.
package sla
