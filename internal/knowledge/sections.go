package knowledge

// Section is one immutable unit of grounding text with its match keywords.
// The catalog is built once at init and shared read-only by every request.
type Section struct {
	ID       string
	Title    string
	Keywords []string
	Content  string
}

// sectionDelimiter separates sections in the concatenated corpus text.
const sectionDelimiter = "\n\n---\n\n"

var sections = []Section{
	{
		ID:    "overview",
		Title: "1. General Product Overview",
		Keywords: []string{
			"skedulelt", "skeduleit", "what is", "about", "overview",
			"platform", "ios", "android", "trinidad", "mobile app",
			"website", "web app",
		},
		Content: "SkeduleIt is a mobile scheduling and payment solution designed for service\n" +
			"providers and customers in Trinidad & Tobago (T&T).\n" +
			"\n" +
			"Target Users : Service businesses (barbers, hairdressers, aestheticians, etc.)\n" +
			"               and their customers.\n" +
			"Platforms    : iOS and Android mobile apps, plus a public website.\n" +
			"               A web app with full functionality will be available soon.\n" +
			"\n" +
			"Two Apps:\n" +
			"• Customer App  - Browse businesses, book appointments, manage bookings\n" +
			"• Business App  - Manage profile, services, team, availability, payments",
	},
	{
		ID:    "account_signup",
		Title: "2. Account Creation & Signup",
		Keywords: []string{
			"sign up", "signup", "create account", "register", "new account",
			"customer account", "business account", "credit card", "payment info",
			"approval", "review process", "free trial",
		},
		Content: "=== Customer Accounts ===\n" +
			"When you create a customer account, you can immediately:\n" +
			"• Browse businesses\n" +
			"• Schedule appointments\n" +
			"• Manage upcoming appointments\n" +
			"• Receive confirmations and reminders\n" +
			"\n" +
			"No credit card required. Your account is active immediately upon signup.\n" +
			"\n" +
			"=== Business Accounts ===\n" +
			"When a business signs up, the account enters a brief review process to ensure\n" +
			"only legitimate businesses are listed. Once approved, you can:\n" +
			"• Create your business profile\n" +
			"• Add services and pricing\n" +
			"• Add team members (service providers)\n" +
			"• Manage availability\n" +
			"• Handle appointments\n" +
			"• Use payment and reporting tools\n" +
			"\n" +
			"No credit card required during signup or free trial. Payment details are only\n" +
			"needed if you choose to continue with a paid plan after the trial.\n" +
			"\n" +
			"=== Guest Booking ===\n" +
			"Customers can browse and book appointments WITHOUT creating an account, but\n" +
			"certain features (like managing bookings and receiving reminders) require signup.",
	},
	{
		ID:    "business_vs_provider",
		Title: "3. Business vs Service Provider",
		Keywords: []string{
			"business", "service provider", "team member", "employee",
			"sole trader", "independent contractor", "difference",
			"multiple providers", "add team", "staff",
		},
		Content: "=== What's the Difference? ===\n" +
			"\n" +
			"Business:\n" +
			"The company or entity listed on SkeduleIt (e.g., 'Trini Cuts Barbershop').\n" +
			"\n" +
			"Service Provider:\n" +
			"An individual who performs the service - whether an employee, team member,\n" +
			"sole trader, or independent contractor under that business.\n" +
			"\n" +
			"Example:\n" +
			"• 'Trini Cuts Barbershop' is the Business\n" +
			"• 'Marcus (Barber)' and 'Jade (Barber)' are Service Providers\n" +
			"\n" +
			"For Sole Traders:\n" +
			"If you work alone, the business and service provider are essentially the same.\n" +
			"\n" +
			"=== Adding Multiple Service Providers ===\n" +
			"Yes! Businesses can add multiple service providers or team members to their\n" +
			"account and assign specific services to each person.",
	},
	{
		ID:    "customer_faq",
		Title: "4. Customer FAQ",
		Keywords: []string{
			"book", "booking", "schedule", "appointment", "make appointment",
			"browse", "search", "find business", "cancel appointment",
			"manage booking", "confirmation", "reminder",
		},
		Content: "=== How do I book an appointment? ===\n" +
			"Open the SkeduleIt Customer App, browse or search for a business, view their\n" +
			"services and availability, and select a time slot. You can book with or without\n" +
			"creating an account.\n" +
			"\n" +
			"=== Can I manage my appointments? ===\n" +
			"Yes! If you have a customer account, you can view, reschedule, or cancel\n" +
			"upcoming appointments directly in the app. You'll also receive confirmations\n" +
			"and reminders.\n" +
			"\n" +
			"=== Is my information private? ===\n" +
			"Yes. Your customer information is completely private and never visible to\n" +
			"other customers.",
	},
	{
		ID:    "business_faq",
		Title: "5. Business FAQ",
		Keywords: []string{
			"manage", "schedule", "availability", "calendar", "working hours",
			"business profile", "services", "pricing", "team", "payments",
			"reporting", "analytics", "social media", "instagram", "facebook",
			"booking link", "share",
		},
		Content: "=== How do I manage my business profile? ===\n" +
			"Use the Business App to create and edit your profile, add services with pricing,\n" +
			"set your availability, and manage your team.\n" +
			"\n" +
			"=== Can I share my SkeduleIt booking link? ===\n" +
			"Yes! You can share your SkeduleIt booking link on Instagram, Facebook, WhatsApp,\n" +
			"and other platforms so customers can book services directly.\n" +
			"\n" +
			"=== Does SkeduleIt handle payments? ===\n" +
			"Yes. SkeduleIt includes integrated payment processing tools.\n" +
			"\n" +
			"=== Can I see business performance and earnings? ===\n" +
			"Yes. The Business App includes reporting and analytics tools to track your\n" +
			"transactions, popular services, and earnings.",
	},
	{
		ID:    "support_help",
		Title: "6. Help & Support",
		Keywords: []string{
			"help", "support", "contact", "assistance", "learn more",
			"onboarding", "get help", "customer service",
		},
		Content: "=== Where can I get help? ===\n" +
			"Support is available through the in-app 'Help & Support' section in both the\n" +
			"Customer and Business apps.\n" +
			"\n" +
			"Additional resources:\n" +
			"• SkeduleIt website\n" +
			"• Social media platforms\n" +
			"• Onboarding assistance for businesses during early rollout\n" +
			"\n" +
			"=== Where can I learn more about SkeduleIt? ===\n" +
			"Information is available in the app's Help & Support section, on the SkeduleIt\n" +
			"website, and across social media platforms.",
	},
	{
		ID:    "account_management",
		Title: "7. Account Management",
		Keywords: []string{
			"cancel account", "close account", "delete account",
			"deactivate", "remove account", "account closure",
		},
		Content: "=== Can I cancel my account? ===\n" +
			"Yes. Both customers and businesses can request account closure at any time.\n" +
			"A confirmation step is included for security.\n" +
			"\n" +
			"For businesses: Closing your account will remove your business from SkeduleIt\n" +
			"and cancel all future appointments.",
	},
}

// Sections returns the catalog in its canonical order.
func Sections() []Section {
	return sections
}
