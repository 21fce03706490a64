package lease

import (
	"fmt"
	"strings"

	"rentwise/models"

	"github.com/shopspring/decimal"
)

const dateLayout = "Jan 2, 2006"

func (s *DefaultLeaseService) leaseLink(leaseID string) string {
	return strings.TrimRight(s.LinkBase, "/") + "/leases/" + leaseID
}

func (s *DefaultLeaseService) billLink(billID string) string {
	return strings.TrimRight(s.LinkBase, "/") + "/bills/" + billID
}

func (s *DefaultLeaseService) leaseAssignedMessage(l models.Lease, b models.Bill) models.Notification {
	end := "open-ended"
	if l.ContractEndDate != nil {
		end = l.ContractEndDate.Format(dateLayout)
	}
	return models.Notification{
		Recipient: l.TenantID,
		Actor:     l.LandlordID,
		Type:      models.NotifyLeaseAssigned,
		Title:     "Welcome to " + l.PropertyTitle,
		Message: fmt.Sprintf(
			"Your lease starts %s and runs until %s. Your move-in payment of %s (rent %s, advance %s, security deposit %s) is due on %s.",
			l.StartDate.Format(dateLayout), end,
			FormatPeso(b.Total()), FormatPeso(b.RentAmount), FormatPeso(b.AdvanceAmount), FormatPeso(b.SecurityDepositAmount),
			b.DueDate.Format(dateLayout),
		),
		Link: s.leaseLink(l.ID),
	}
}

func (s *DefaultLeaseService) renewalRequestedMessage(l models.Lease) models.Notification {
	return models.Notification{
		Recipient: l.LandlordID,
		Actor:     l.TenantID,
		Type:      models.NotifyRenewalRequested,
		Title:     "Renewal requested",
		Message:   fmt.Sprintf("%s asked to renew the lease for %s.", l.TenantName, l.PropertyTitle),
		Link:      s.leaseLink(l.ID),
	}
}

func (s *DefaultLeaseService) renewalApprovedMessage(l models.Lease) models.Notification {
	return models.Notification{
		Recipient: l.TenantID,
		Actor:     l.LandlordID,
		Type:      models.NotifyRenewalApproved,
		Title:     "Lease renewed",
		Message:   fmt.Sprintf("Your lease for %s has been renewed until %s.", l.PropertyTitle, l.ContractEndDate.Format(dateLayout)),
		Link:      s.leaseLink(l.ID),
	}
}

func (s *DefaultLeaseService) billIssuedMessage(l models.Lease, b models.Bill) models.Notification {
	return models.Notification{
		Recipient: l.TenantID,
		Actor:     l.LandlordID,
		Type:      models.NotifyBillIssued,
		Title:     b.Description,
		Message: fmt.Sprintf("%s of %s (rent %s, advance %s) is due on %s.",
			b.Description, FormatPeso(b.Total()), FormatPeso(b.RentAmount), FormatPeso(b.AdvanceAmount),
			b.DueDate.Format(dateLayout)),
		Link: s.billLink(b.ID),
	}
}

func (s *DefaultLeaseService) renewalRejectedMessage(l models.Lease, reason string) models.Notification {
	msg := fmt.Sprintf("Your renewal request for %s was declined.", l.PropertyTitle)
	if reason = strings.TrimSpace(reason); reason != "" {
		msg += " Reason: " + reason
	}
	return models.Notification{
		Recipient: l.TenantID,
		Actor:     l.LandlordID,
		Type:      models.NotifyRenewalRejected,
		Title:     "Renewal declined",
		Message:   msg,
		Link:      s.leaseLink(l.ID),
	}
}

func (s *DefaultLeaseService) endRequestedMessage(l models.Lease) models.Notification {
	msg := fmt.Sprintf("%s asked to end the lease for %s on %s.", l.TenantName, l.PropertyTitle, l.EndRequestedDate.Format(dateLayout))
	if l.EndReason != "" {
		msg += " Reason: " + l.EndReason
	}
	return models.Notification{
		Recipient: l.LandlordID,
		Actor:     l.TenantID,
		Type:      models.NotifyEndRequested,
		Title:     "Lease end requested",
		Message:   msg,
		Link:      s.leaseLink(l.ID),
	}
}

func (s *DefaultLeaseService) endApprovedMessage(l models.Lease) models.Notification {
	return models.Notification{
		Recipient: l.TenantID,
		Actor:     l.LandlordID,
		Type:      models.NotifyEndApproved,
		Title:     "Lease end approved",
		Message:   fmt.Sprintf("Your lease for %s ends on %s.", l.PropertyTitle, l.EndDate.Format(dateLayout)),
		Link:      s.leaseLink(l.ID),
	}
}

func (s *DefaultLeaseService) endRejectedMessage(l models.Lease, reason string) models.Notification {
	msg := fmt.Sprintf("Your request to end the lease for %s was declined. The lease stays active.", l.PropertyTitle)
	if reason = strings.TrimSpace(reason); reason != "" {
		msg += " Reason: " + reason
	}
	return models.Notification{
		Recipient: l.TenantID,
		Actor:     l.LandlordID,
		Type:      models.NotifyEndRejected,
		Title:     "Lease end declined",
		Message:   msg,
		Link:      s.leaseLink(l.ID),
	}
}

func (s *DefaultLeaseService) terminatedMessage(l models.Lease) models.Notification {
	return models.Notification{
		Recipient: l.TenantID,
		Actor:     l.LandlordID,
		Type:      models.NotifyLeaseTerminated,
		Title:     "Lease terminated",
		Message: fmt.Sprintf("Your lease for %s has been terminated effective %s. Reason: %s",
			l.PropertyTitle, l.EndDate.Format(dateLayout), l.EndReason),
		Link: s.leaseLink(l.ID),
	}
}

func (s *DefaultLeaseService) paymentSubmittedMessage(b models.Bill) models.Notification {
	return models.Notification{
		Recipient: b.LandlordID,
		Actor:     b.TenantID,
		Type:      models.NotifyPaymentSubmitted,
		Title:     "Payment submitted",
		Message: fmt.Sprintf("A payment of %s for the bill due %s is waiting for your confirmation.",
			FormatPeso(*b.AmountPaid), b.DueDate.Format(dateLayout)),
		Link: s.billLink(b.ID),
	}
}

func (s *DefaultLeaseService) paymentConfirmedMessage(b models.Bill) models.Notification {
	return models.Notification{
		Recipient: b.TenantID,
		Actor:     b.LandlordID,
		Type:      models.NotifyPaymentConfirmed,
		Title:     "Payment confirmed",
		Message: fmt.Sprintf("Your payment of %s for the bill due %s has been confirmed.",
			FormatPeso(*b.AmountPaid), b.DueDate.Format(dateLayout)),
		Link: s.billLink(b.ID),
	}
}

// FormatPeso renders an amount as ₱20,000.00.
func FormatPeso(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "₱" + b.String() + "." + frac
}
