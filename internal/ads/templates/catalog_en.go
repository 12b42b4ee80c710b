// internal/ads/templates/catalog_en.go
package templates

import "visa-platform/internal/visa/pricing"

var templatesEN = map[pricing.ServiceType]Template{
	pricing.ServiceUrgent1H: {
		Headlines: []string{
			"Vietnam Visa in 1 Hour",
			"Urgent Visa - Get It Now",
			"Airport Emergency Visa",
			"{AIRPORT} Vietnam Visa",
			"Approval in 60 Minutes",
			"Emergency Visa Service",
			"Stuck at Airport? Help!",
			"Fast Vietnam Visa Today",
			"Visa Approved in 1 Hour",
			"Last Minute Vietnam Visa",
		},
		Descriptions: []string{
			"Stuck at {AIRPORT}? Get your Vietnam visa approved in just 1 hour. Manual processing by local experts.",
			"Emergency visa service available now. Vietnam office is OPEN. Apply online, board your flight.",
			"Need a Vietnam visa urgently? Our team processes applications in 60 minutes. Guaranteed approval.",
			"Fastest Vietnam visa service. From {PRICE}. Apply now and fly today.",
		},
		FinalURL: baseURL + "/apply?service=urgent-1h",
		Keywords: []string{
			"urgent vietnam visa",
			"vietnam visa 1 hour",
			"emergency vietnam visa",
			"fast vietnam visa",
			"same day vietnam visa",
		},
	},
	pricing.ServiceUrgent2H: {
		Headlines: []string{
			"Vietnam Visa in 2 Hours",
			"Quick Visa Processing",
			"2-Hour Visa Approval",
			"{AIRPORT} Fast Visa",
			"Express Vietnam Visa",
			"Rapid Visa Service",
			"Vietnam Visa Express",
			"Fast Track Visa",
			"Priority Processing",
			"Quick Vietnam Visa",
		},
		Descriptions: []string{
			"Vietnam visa approved in 2 hours. Perfect for tight schedules. Apply online now.",
			"Express visa processing for Vietnam. From {PRICE}. Fast, reliable, guaranteed.",
			"Need your visa quickly? 2-hour processing available. Vietnam office open now.",
			"Priority visa service from {AIRPORT}. Get approved in just 2 hours.",
		},
		FinalURL: baseURL + "/apply?service=urgent-2h",
		Keywords: []string{
			"quick vietnam visa",
			"2 hour vietnam visa",
			"express vietnam visa",
			"fast visa vietnam",
		},
	},
	pricing.ServiceUrgent4H: {
		Headlines: []string{
			"Vietnam Visa in 4 Hours",
			"Same Day Visa Service",
			"4-Hour Visa Approval",
			"Express Visa Today",
			"Quick Vietnam Visa",
			"{AIRPORT} Express Visa",
			"Visa Before You Fly",
			"Fast Visa Processing",
			"Same Day Processing",
			"Vietnam Visa Today",
		},
		Descriptions: []string{
			"Vietnam visa in 4 hours. Apply now and receive your approval same day.",
			"Same day visa service for Vietnam. Professional processing from {PRICE}.",
			"Flying to Vietnam today? Get your visa approved in 4 hours. Apply online.",
			"Fast visa processing. 4-hour turnaround. Trusted by thousands of travelers.",
		},
		FinalURL: baseURL + "/apply?service=urgent-4h",
		Keywords: []string{
			"same day vietnam visa",
			"4 hour vietnam visa",
			"vietnam visa today",
			"express visa service",
		},
	},
	pricing.Service1Day: {
		Headlines: []string{
			"1-Day Vietnam Visa",
			"Next Day Visa Service",
			"Vietnam Visa Tomorrow",
			"Fast Visa Processing",
			"24-Hour Visa Service",
			"Quick Visa Approval",
			"Vietnam E-Visa Fast",
			"Visa in 1 Business Day",
			"Reliable Visa Service",
			"Trusted Visa Agency",
		},
		Descriptions: []string{
			"Vietnam visa in 1 business day. Professional service, guaranteed approval. From {PRICE}.",
			"Need your visa by tomorrow? Apply today, receive approval in 24 hours.",
			"Fast and reliable Vietnam visa service. 1-day processing, no hassle.",
			"Trusted by travelers worldwide. Vietnam visa in just 1 business day.",
		},
		FinalURL: baseURL + "/apply?service=1day",
		Keywords: []string{
			"vietnam visa next day",
			"1 day vietnam visa",
			"24 hour vietnam visa",
			"fast vietnam visa service",
		},
	},
	pricing.Service2Day: {
		Headlines: []string{
			"2-Day Vietnam Visa",
			"Vietnam Visa Service",
			"Quick Visa Processing",
			"Reliable Visa Agency",
			"Vietnam E-Visa Online",
			"Trusted Visa Service",
			"Easy Visa Application",
			"Vietnam Visa Experts",
			"Affordable Visa Help",
			"Vietnam Travel Visa",
		},
		Descriptions: []string{
			"Vietnam visa in 2 business days. Affordable rates, professional service.",
			"Apply for your Vietnam visa online. 2-day processing, guaranteed approval.",
			"Planning a trip to Vietnam? Get your visa in 2 days. Easy online application.",
			"Reliable Vietnam visa service. Fast processing, competitive rates from {PRICE}.",
		},
		FinalURL: baseURL + "/apply?service=2day",
		Keywords: []string{
			"vietnam visa 2 days",
			"vietnam visa online",
			"vietnam e-visa",
			"vietnam travel visa",
		},
	},
	pricing.ServiceWeekend: {
		Headlines: []string{
			"Weekend Visa Service",
			"Saturday/Sunday Visa",
			"Holiday Visa Help",
			"Weekend Processing",
			"Vietnam Visa Weekend",
			"After Hours Service",
			"Weekend Visa Experts",
			"Holiday Visa Service",
			"Open on Weekends",
			"Vietnam Visa 24/7",
		},
		Descriptions: []string{
			"Need a Vietnam visa this weekend? Our team works weekends and holidays.",
			"Weekend visa service available. Premium processing when offices are closed.",
			"Stuck on a Saturday? We process Vietnam visas on weekends. Apply now.",
			"Holiday visa emergency? Our weekend team is ready to help. From {PRICE}.",
		},
		FinalURL: baseURL + "/apply?service=weekend",
		Keywords: []string{
			"vietnam visa weekend",
			"saturday vietnam visa",
			"sunday vietnam visa",
			"holiday vietnam visa",
		},
	},
	pricing.ServiceStandard: {
		Headlines: []string{
			"Vietnam Visa Online",
			"Easy Visa Application",
			"Vietnam E-Visa Service",
			"Affordable Vietnam Visa",
			"Apply for Vietnam Visa",
			"Vietnam Travel Visa",
			"Online Visa Service",
			"Vietnam Visa Help",
			"Cheap Vietnam Visa",
			"Best Visa Service",
		},
		Descriptions: []string{
			"Vietnam visa made easy. Apply online in minutes. From just {PRICE}.",
			"Planning a trip to Vietnam? Get your visa online. Fast, easy, affordable.",
			"Professional Vietnam visa service. Thousands of happy travelers. Apply today.",
			"The easiest way to get your Vietnam visa. Online application, fast approval.",
		},
		FinalURL: baseURL + "/apply",
		Keywords: []string{
			"vietnam visa",
			"vietnam e-visa",
			"vietnam visa online",
			"apply vietnam visa",
			"vietnam tourist visa",
		},
	},
}
