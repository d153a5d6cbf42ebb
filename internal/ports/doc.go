// Package ports declares the boundaries of the board service. BoardService
// is what the HTTP layer drives; LeadClient and Notifier are what the
// application drives, implemented by the CRM client and the event hub.
package ports
