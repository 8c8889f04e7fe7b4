package services

// Services defined in this package:
// - EligibilityService: Runs the rule engine and maintains the verdict ledger
// - CitizenService: Handles citizen profile registration and updates
// - CategoryService: Handles beneficiary categories and citizen interests
// - SchemeService: Handles welfare scheme administration
// - RuleService: Handles eligibility rule administration and fan-out
// - ApplicationService: Handles scheme application lifecycle
// - GrievanceService: Handles grievance lifecycle
// - AnnouncementService: Handles public announcements
