package dataset

// Sample returns the built-in demo dataset. It is used when no dataset
// source is configured so the service always has something to serve.
func Sample() *Document {
	return &Document{
		Alerts: []Record{
			{
				ID: "1", User: "pushya", Event: "Mass Download", Risk: 95,
				Method: "Isolation Forest", Time: "2025-09-17 09:12",
				Details: "Unusually large file transfer detected. Review user activity.",
				IsNew:   true,
			},
			{
				ID: "2", User: "akhil", Event: "Off-hours Login", Risk: 82,
				Method: "Autoencoder", Time: "2025-09-17 22:30",
				Details: "Login outside normal working hours. Possible credential misuse.",
			},
			{
				ID: "3", User: "bhaavya", Event: "Privilege Escalation", Risk: 70,
				Method: "Isolation Forest", Time: "2025-09-16 14:05",
				Details: "User gained elevated permissions. Check for policy violation.",
			},
			{
				ID: "4", User: "ajay", Event: "Suspicious File Access", Risk: 88,
				Method: "XGBoost", Time: "2025-09-17 11:45",
				Details: "Accessed sensitive files unusually. Monitor closely.",
				IsNew:   true,
			},
			{
				ID: "5", User: "vishnu", Event: "Multiple Failed Logins", Risk: 60,
				Method: "XGBoost", Time: "2025-09-17 08:20",
				Details: "Several failed login attempts detected. Possible brute-force attack.",
			},
			{
				ID: "6", User: "hitesh", Event: "Unusual Data Upload", Risk: 92,
				Method: "XGBoost", Time: "2025-09-17 15:10",
				Details: "Large upload of sensitive data. Immediate review needed.",
				IsNew:   true,
			},
		},
		Profiles: []Profile{
			{
				User: "pushya", Logins: 14, FilesAccessed: 52,
				LastActive: "2025-09-17 17:45", Activity: []float64{14, 18, 10, 7, 3},
				Anomalies: []Record{
					{
						ID: "p1", Event: "Mass Download", Severity: "critical",
						Method: "Isolation Forest", Time: "2025-09-17 09:12",
						Details: "Unusually large file transfer detected.",
					},
					{
						ID: "p2", Event: "Privilege Escalation", Severity: "high",
						Method: "Isolation Forest", Time: "2025-09-16 14:05",
						Details: "User gained elevated permissions.",
					},
				},
			},
			{
				User: "akhil", Logins: 10, FilesAccessed: 33,
				LastActive: "2025-09-17 22:30", Activity: []float64{10, 12, 8, 6, 5},
				Anomalies: []Record{
					{
						ID: "a1", Event: "Off-hours Login", Severity: "high",
						Method: "Autoencoder", Time: "2025-09-17 22:30",
						Details: "Login outside normal working hours. Possible credential misuse.",
					},
				},
			},
			{
				User: "bhaavya", Logins: 8, FilesAccessed: 21,
				LastActive: "2025-09-17 15:10", Activity: []float64{8, 9, 7, 5, 4},
			},
			{
				User: "ajay", Logins: 13, FilesAccessed: 40,
				LastActive: "2025-09-17 11:45", Activity: []float64{13, 15, 12, 9, 6},
				Anomalies: []Record{
					{
						ID: "j1", Event: "Suspicious File Access", Severity: "high",
						Method: "XGBoost", Time: "2025-09-17 11:45",
						Details: "Accessed sensitive files unusually. Monitor closely.",
					},
				},
			},
			{
				User: "vishnu", Logins: 6, FilesAccessed: 15,
				LastActive: "2025-09-17 08:20", Activity: []float64{6, 7, 5, 4, 3},
				Anomalies: []Record{
					{
						ID: "v1", Event: "Multiple Failed Logins", Severity: "medium",
						Method: "XGBoost", Time: "2025-09-17 08:20",
						Details: "Several failed login attempts detected. Possible brute-force attack.",
					},
				},
			},
			{
				User: "hitesh", Logins: 11, FilesAccessed: 29,
				LastActive: "2025-09-17 15:10", Activity: []float64{11, 13, 9, 8, 7},
				Anomalies: []Record{
					{
						ID: "h1", Event: "Unusual Data Upload", Severity: "critical",
						Method: "XGBoost", Time: "2025-09-17 15:10",
						Details: "Large upload of sensitive data. Immediate review needed.",
					},
				},
			},
		},
	}
}
