package catalog

import "github.com/bryanwahyu/cyberdefense-reasoning/internal/domain/threat"

const (
	PhishingEmailCampaign   threat.ScenarioName = "Phishing Email Campaign"
	LateralMovementDetected threat.ScenarioName = "Lateral Movement Detected"
	DataExfiltrationAttempt threat.ScenarioName = "Data Exfiltration Attempt"
)

// Seed returns the demo scenarios in selector order.
func Seed() []threat.Scenario {
	return []threat.Scenario{
		{
			Name:        PhishingEmailCampaign,
			Description: "Suspicious email with malicious attachment targeting finance department",
			Indicators: []string{
				"Sender: noreply@bank-secure.net",
				"Attachment: invoice_urgent.exe",
				"Urgency language used",
			},
			AdversarialReasoning: "The attacker chose a finance-themed phishing email because: 1) Finance departments handle sensitive data, 2) Urgency creates pressure to bypass security protocols, 3) .exe disguised as invoice exploits trust in routine business documents",
			Mitigation:           "Implement email filtering, user training, and attachment sandboxing",
		},
		{
			Name:        LateralMovementDetected,
			Description: "Unusual network traffic between compromised workstation and domain controller",
			Indicators: []string{
				"Source: 192.168.1.45",
				"Destination: DC01 (192.168.1.10)",
				"Protocol: SMB unusual hours",
			},
			AdversarialReasoning: "The attacker is moving laterally because: 1) Initial compromise was a low-privilege workstation, 2) Domain controller access provides administrative control, 3) SMB protocol allows credential harvesting and privilege escalation",
			Mitigation:           "Isolate affected systems, reset domain credentials, implement network segmentation",
		},
		{
			Name:        DataExfiltrationAttempt,
			Description: "Large file transfer to external cloud storage during off-hours",
			Indicators: []string{
				"Volume: 2.5GB",
				"Destination: dropbox.com",
				"Time: 2:30 AM",
				"User: admin_backup",
			},
			AdversarialReasoning: "The attacker chose this exfiltration method because: 1) Off-hours reduce detection probability, 2) Cloud storage appears legitimate, 3) Admin account provides access justification, 4) Large volume suggests valuable data theft",
			Mitigation:           "Block unauthorized cloud services, implement DLP policies, monitor admin account usage",
		},
	}
}
