package knowledge

var serviceCategories = []Category{
	{
		Name: "Technology Services",
		Opportunities: []Opportunity{
			{
				Title:             "Web Development",
				Keywords:          []string{"coding", "tech"},
				SkillsNeeded:      []string{"HTML/CSS", "JavaScript", "Basic design sense"},
				Capital:           "₦0 - ₦5,000",
				TimeToFirstIncome: "2-4 weeks",
				PotentialIncome:   Income{Month1: "₦10,000 - ₦30,000", Month3: "₦50,000 - ₦100,000", Month6: "₦100,000 - ₦200,000+"},
				Tools:             []string{"VS Code (free)", "GitHub (free)", "Netlify/Vercel (free hosting)"},
				ActionPlan: []string{
					"Week 1: Learn basic HTML/CSS/JavaScript (FreeCodeCamp)",
					"Week 2: Build 3 portfolio websites (personal, business, portfolio)",
					"Week 3: Join Facebook groups, offer services at ₦15,000-25,000",
					"Week 4: Get first client, deliver quality work, ask for referrals",
					"Month 2+: Increase prices, build reputation, get recurring clients",
				},
				TargetClients:     []string{"Small businesses", "Startups", "Individuals needing portfolios"},
				MarketingChannels: []string{"Facebook groups", "Twitter", "LinkedIn", "Direct outreach"},
			},
			{
				Title:             "Graphic Design",
				Keywords:          []string{"creative", "visual"},
				SkillsNeeded:      []string{"Creativity", "Basic design principles", "Canva/Photoshop"},
				Capital:           "₦0",
				TimeToFirstIncome: "1-2 weeks",
				PotentialIncome:   Income{Month1: "₦10,000 - ₦25,000", Month3: "₦40,000 - ₦80,000", Month6: "₦80,000 - ₦150,000+"},
				Tools:             []string{"Canva (free)", "Photoshop (trial/affordable)", "Figma (free)"},
				ActionPlan: []string{
					"Week 1: Master Canva, learn design basics on YouTube",
					"Week 1-2: Create 10 sample designs (logos, flyers, social media posts)",
					"Week 2: Post samples on Instagram/Behance, join design groups",
					"Week 2-3: Offer discounted services (₦2,000-5,000) for testimonials",
					"Month 2+: Build portfolio, increase rates, get retainer clients",
				},
				TargetClients:     []string{"Small businesses", "Event planners", "Social media managers"},
				MarketingChannels: []string{"Instagram", "Facebook", "WhatsApp Status", "Behance"},
			},
			{
				Title:             "Social Media Management",
				Keywords:          []string{"social media", "marketing"},
				SkillsNeeded:      []string{"Social media knowledge", "Content creation", "Communication"},
				Capital:           "₦0",
				TimeToFirstIncome: "1-3 weeks",
				PotentialIncome:   Income{Month1: "₦15,000 - ₦40,000", Month3: "₦50,000 - ₦100,000", Month6: "₦100,000 - ₦200,000+"},
				Tools:             []string{"Canva", "Buffer/Hootsuite (free tiers)", "Meta Business Suite"},
				ActionPlan: []string{
					"Week 1: Study successful brand accounts, learn content strategies",
					"Week 1-2: Create sample content calendars and posts",
					"Week 2-3: Reach out to small businesses, offer free trial (1 week)",
					"Week 3-4: Convert trial clients to paid (₦15,000-30,000/month)",
					"Month 2+: Manage 3-5 clients, scale pricing",
				},
				TargetClients:     []string{"Local businesses", "Personal brands", "Startups"},
				MarketingChannels: []string{"Direct messages", "LinkedIn", "Local business groups"},
			},
		},
	},
	{
		Name: "Content Creation Services",
		Opportunities: []Opportunity{
			{
				Title:             "Freelance Writing",
				Keywords:          []string{"writing", "communication"},
				SkillsNeeded:      []string{"Good writing skills", "Research ability", "Grammar knowledge"},
				Capital:           "₦0",
				TimeToFirstIncome: "1-2 weeks",
				PotentialIncome:   Income{Month1: "₦10,000 - ₦30,000", Month3: "₦40,000 - ₦80,000", Month6: "₦80,000 - ₦150,000+"},
				Tools:             []string{"Grammarly (free)", "Google Docs", "Hemingway Editor"},
				ActionPlan: []string{
					"Week 1: Create 3-5 writing samples (blog posts, articles)",
					"Week 1-2: Sign up on Fiverr, Upwork, create portfolio",
					"Week 2-3: Apply for 20+ jobs daily, start with low rates",
					"Week 3-4: Get first clients, deliver excellent work, get reviews",
					"Month 2+: Increase rates, build reputation, get direct clients",
				},
				TargetClients:     []string{"Bloggers", "Businesses", "Marketing agencies"},
				MarketingChannels: []string{"Fiverr", "Upwork", "LinkedIn", "Content platforms"},
			},
			{
				Title:             "Video Editing",
				Keywords:          []string{"creative", "tech"},
				SkillsNeeded:      []string{"Basic editing", "Creativity", "Patience"},
				Capital:           "₦0 - ₦10,000",
				TimeToFirstIncome: "2-4 weeks",
				PotentialIncome:   Income{Month1: "₦15,000 - ₦40,000", Month3: "₦50,000 - ₦100,000", Month6: "₦100,000 - ₦250,000+"},
				Tools:             []string{"CapCut (free)", "DaVinci Resolve (free)", "Adobe Premiere (paid)"},
				ActionPlan: []string{
					"Week 1-2: Learn basic editing on YouTube, practice daily",
					"Week 2-3: Edit sample videos (fake commercials, vlogs)",
					"Week 3-4: Post samples, reach out to YouTubers/businesses",
					"Month 2: Get clients, charge ₦5,000-15,000 per video",
					"Month 3+: Specialize (ads, YouTube, events), increase rates",
				},
				TargetClients:     []string{"YouTubers", "Businesses", "Event organizers"},
				MarketingChannels: []string{"Twitter", "Instagram", "YouTube", "Fiverr"},
			},
		},
	},
	{
		Name: "Education & Tutoring",
		Opportunities: []Opportunity{
			{
				Title:             "Online Tutoring",
				Keywords:          []string{"teaching", "knowledge sharing"},
				SkillsNeeded:      []string{"Subject expertise", "Teaching ability", "Patience"},
				Capital:           "₦0",
				TimeToFirstIncome: "1 week",
				PotentialIncome:   Income{Month1: "₦20,000 - ₦50,000", Month3: "₦60,000 - ₦120,000", Month6: "₦120,000 - ₦250,000+"},
				Tools:             []string{"Zoom (free)", "Google Meet", "WhatsApp", "YouTube"},
				ActionPlan: []string{
					"Week 1: Identify subjects you excel in, create lesson plans",
					"Week 1-2: Advertise in student groups, offer free demo class",
					"Week 2: Start with 3-5 students at ₦2,000-5,000/hour",
					"Month 2: Get testimonials, increase rates, add group classes",
					"Month 3+: Scale to 10-15 students, consider creating courses",
				},
				TargetClients:     []string{"Primary/secondary students", "University students", "Adults learning new skills"},
				MarketingChannels: []string{"WhatsApp Status", "Facebook groups", "School forums", "Word of mouth"},
			},
		},
	},
	{
		Name: "Administrative & Data Services",
		Opportunities: []Opportunity{
			{
				Title:             "Typing & Document Services",
				Keywords:          []string{"typing", "administrative", "fast typing"},
				SkillsNeeded:      []string{"Fast typing", "Attention to detail", "Microsoft Office"},
				Capital:           "₦0",
				TimeToFirstIncome: "3-7 days",
				PotentialIncome:   Income{Month1: "₦15,000 - ₦40,000", Month3: "₦50,000 - ₦100,000", Month6: "₦80,000 - ₦180,000+"},
				Tools:             []string{"Microsoft Word/Google Docs", "WhatsApp", "Email"},
				ActionPlan: []string{
					"Week 1: Advertise typing services in student groups (₦500-2,000 per project)",
					"Week 1: Offer to type assignments, CVs, business documents",
					"Week 2: Get 3-5 clients, deliver fast with excellent formatting",
					"Week 3: Increase rates based on urgency and document length",
					"Month 2+: Add transcription, CV design, get recurring clients",
				},
				TargetClients:     []string{"Students needing assignments typed", "Professionals needing CVs", "Researchers needing transcription"},
				MarketingChannels: []string{"Campus notice boards", "WhatsApp Status", "Student groups", "LinkedIn"},
			},
			{
				Title:             "Data Entry & Virtual Assistant",
				Keywords:          []string{"organization", "admin"},
				SkillsNeeded:      []string{"Typing speed", "Organization", "Basic computer skills"},
				Capital:           "₦0",
				TimeToFirstIncome: "1-2 weeks",
				PotentialIncome:   Income{Month1: "₦20,000 - ₦50,000", Month3: "₦60,000 - ₦120,000", Month6: "₦100,000 - ₦200,000+"},
				Tools:             []string{"Microsoft Excel/Google Sheets", "Email", "Cloud storage"},
				ActionPlan: []string{
					"Week 1: Create Upwork/Fiverr profile showcasing typing speed",
					"Week 1-2: Apply for data entry gigs (₦5,000-15,000 per project)",
					"Week 2-3: Deliver quality work quickly, get 5-star reviews",
					"Week 3-4: Expand to virtual assistant tasks (email, scheduling)",
					"Month 2+: Get retainer clients (₦30,000-50,000/month)",
				},
				TargetClients:     []string{"Small businesses", "Entrepreneurs", "Real estate agents", "Researchers"},
				MarketingChannels: []string{"Upwork", "Fiverr", "LinkedIn", "Local business groups"},
			},
			{
				Title:             "Transcription Services",
				Keywords:          []string{"typing", "listening"},
				SkillsNeeded:      []string{"Fast typing", "Good listening", "Patience"},
				Capital:           "₦0",
				TimeToFirstIncome: "1-2 weeks",
				PotentialIncome:   Income{Month1: "₦15,000 - ₦35,000", Month3: "₦40,000 - ₦90,000", Month6: "₦80,000 - ₦150,000+"},
				Tools:             []string{"Text editor", "Headphones", "Transcription software (free)"},
				ActionPlan: []string{
					"Week 1: Sign up on Rev.com, GoTranscript, or local platforms",
					"Week 1-2: Practice with sample audio, improve accuracy",
					"Week 2-3: Take beginner transcription jobs",
					"Week 3-4: Build reputation, aim for ₦500-1,500 per audio hour",
					"Month 2+: Specialize (legal, medical), charge premium rates",
				},
				TargetClients:     []string{"Podcasters", "Researchers", "Content creators", "Legal professionals"},
				MarketingChannels: []string{"Rev.com", "Fiverr", "Upwork", "Direct outreach to podcasters"},
			},
		},
	},
	{
		Name: "Speaking & Presentation Services",
		Opportunities: []Opportunity{
			{
				Title:             "Event Hosting & MC Services",
				Keywords:          []string{"public speaking", "presenting", "confidence"},
				SkillsNeeded:      []string{"Public speaking", "Confidence", "Good voice", "Crowd control"},
				Capital:           "₦0 - ₦5,000",
				TimeToFirstIncome: "1-3 weeks",
				PotentialIncome:   Income{Month1: "₦10,000 - ₦30,000", Month3: "₦50,000 - ₦100,000", Month6: "₦100,000 - ₦250,000+"},
				Tools:             []string{"Professional attire", "Microphone (optional)", "Business cards"},
				ActionPlan: []string{
					"Week 1: Offer to host small campus events for free (build portfolio)",
					"Week 2: Record videos of yourself hosting, create Instagram page",
					"Week 2-3: Reach out to event planners, churches, student associations",
					"Week 3-4: Charge ₦5,000-15,000 for small events",
					"Month 2+: Network aggressively, charge ₦20,000-50,000+ per event",
				},
				TargetClients:     []string{"Event planners", "Churches", "Student associations", "Corporate events", "Weddings"},
				MarketingChannels: []string{"Instagram", "TikTok", "Event planner networks", "Word of mouth"},
			},
			{
				Title:             "Workshop & Conference Speaker",
				Keywords:          []string{"speaking", "expertise", "teaching"},
				SkillsNeeded:      []string{"Public speaking", "Expertise in topic", "Confidence"},
				Capital:           "₦0",
				TimeToFirstIncome: "2-4 weeks",
				PotentialIncome:   Income{Month1: "₦10,000 - ₦40,000", Month3: "₦40,000 - ₦100,000", Month6: "₦80,000 - ₦200,000+"},
				Tools:             []string{"Presentation slides (PowerPoint/Canva)", "LinkedIn profile"},
				ActionPlan: []string{
					"Week 1: Identify your expertise area (tech, entrepreneurship, etc.)",
					"Week 1-2: Create 2-3 presentation topics with outlines",
					"Week 2-3: Reach out to hackathons, student clubs, bootcamps offering to speak",
					"Week 3-4: Start with free talks to build portfolio and testimonials",
					"Month 2+: Charge ₦10,000-50,000 per session, target corporate workshops",
				},
				TargetClients:     []string{"Hackathons", "Tech bootcamps", "Student clubs", "Startups", "Corporate training"},
				MarketingChannels: []string{"LinkedIn", "Twitter", "Event organizer groups", "Direct outreach"},
			},
			{
				Title:             "Voice-Over Services",
				Keywords:          []string{"good voice", "speaking", "clear speech"},
				SkillsNeeded:      []string{"Good speaking voice", "Clear pronunciation", "Audio editing"},
				Capital:           "₦5,000 - ₦15,000",
				TimeToFirstIncome: "2-3 weeks",
				PotentialIncome:   Income{Month1: "₦10,000 - ₦30,000", Month3: "₦40,000 - ₦80,000", Month6: "₦80,000 - ₦150,000+"},
				Tools:             []string{"Good microphone (₦5,000-10,000)", "Audacity (free)", "Quiet recording space"},
				ActionPlan: []string{
					"Week 1: Invest in basic USB microphone, practice recording",
					"Week 1-2: Create sample voice-over demos (ads, explainers, audiobooks)",
					"Week 2-3: Sign up on Fiverr, Upwork, Voices.com",
					"Week 3-4: Start with low rates (₦2,000-5,000 per project)",
					"Month 2+: Build portfolio, specialize, increase to ₦10,000-30,000",
				},
				TargetClients:     []string{"YouTube creators", "Advertisers", "E-learning platforms", "Audiobook producers"},
				MarketingChannels: []string{"Fiverr", "Upwork", "YouTube creator groups", "LinkedIn"},
			},
		},
	},
	{
		Name: "Physical & Manual Labor Services",
		Opportunities: []Opportunity{
			{
				Title:             "Moving & Delivery Services",
				Keywords:          []string{"physical strength", "stamina", "reliable"},
				SkillsNeeded:      []string{"Physical strength", "Reliability", "Time management"},
				Capital:           "₦0 - ₦10,000",
				TimeToFirstIncome: "3-7 days",
				PotentialIncome:   Income{Month1: "₦20,000 - ₦60,000", Month3: "₦60,000 - ₦150,000", Month6: "₦100,000 - ₦250,000+"},
				Tools:             []string{"Bicycle/motorcycle (optional)", "Strong bags/cart", "Phone for coordination"},
				ActionPlan: []string{
					"Week 1: Advertise moving services in campus groups (₦2,000-5,000 per move)",
					"Week 1: Offer to help students move between hostels/apartments",
					"Week 2: Partner with online stores for delivery (₦500-2,000 per delivery)",
					"Week 3: Build reputation for reliability, get referrals",
					"Month 2+: Consider getting motorcycle for faster deliveries, scale pricing",
				},
				TargetClients:     []string{"Students moving hostels", "Online stores", "Local businesses", "Events"},
				MarketingChannels: []string{"Campus notice boards", "WhatsApp groups", "Student associations", "Instagram"},
			},
			{
				Title:             "Event Setup & Teardown Crew",
				Keywords:          []string{"strong", "physical work", "labor"},
				SkillsNeeded:      []string{"Physical strength", "Teamwork", "Following instructions"},
				Capital:           "₦0",
				TimeToFirstIncome: "1-2 weeks",
				PotentialIncome:   Income{Month1: "₦15,000 - ₦40,000", Month3: "₦50,000 - ₦100,000", Month6: "₦80,000 - ₦180,000+"},
				Tools:             []string{"Work gloves (optional)", "Phone", "Reliable availability"},
				ActionPlan: []string{
					"Week 1: Contact event planners offering setup/cleanup services",
					"Week 1-2: Offer services to campus events, churches, parties",
					"Week 2-3: Charge ₦3,000-8,000 per event depending on size",
					"Week 3-4: Build team of 2-3 reliable friends, scale operations",
					"Month 2+: Get recurring clients, charge premium for reliability",
				},
				TargetClients:     []string{"Event planners", "Churches", "Hotels", "Conference centers", "Party organizers"},
				MarketingChannels: []string{"Direct outreach to event planners", "Word of mouth", "Event venues"},
			},
			{
				Title:             "Cleaning & Housekeeping Services",
				Keywords:          []string{"detail-oriented", "organized", "physical"},
				SkillsNeeded:      []string{"Attention to detail", "Reliability", "Physical stamina"},
				Capital:           "₦2,000 - ₦5,000",
				TimeToFirstIncome: "3-7 days",
				PotentialIncome:   Income{Month1: "₦20,000 - ₦50,000", Month3: "₦60,000 - ₦120,000", Month6: "₦100,000 - ₦200,000+"},
				Tools:             []string{"Basic cleaning supplies (₦2,000-3,000)", "Uniform/professional attire"},
				ActionPlan: []string{
					"Week 1: Buy basic supplies (soap, broom, mop, gloves)",
					"Week 1: Advertise dorm/apartment cleaning (₦2,000-5,000 per clean)",
					"Week 2: Offer weekly cleaning subscriptions (₦8,000-15,000/month)",
					"Week 3: Target busy professionals, students during exams",
					"Month 2+: Build team, scale to 10-15 regular clients",
				},
				TargetClients:     []string{"Busy students", "Working professionals", "Hostels", "Offices", "Airbnb hosts"},
				MarketingChannels: []string{"WhatsApp Status", "Campus groups", "Hostel notice boards", "Instagram"},
			},
			{
				Title:             "Personal Shopping & Errands",
				Keywords:          []string{"reliable", "organized", "helpful"},
				SkillsNeeded:      []string{"Organization", "Reliability", "Good communication"},
				Capital:           "₦0 - ₦5,000",
				TimeToFirstIncome: "1 week",
				PotentialIncome:   Income{Month1: "₦15,000 - ₦40,000", Month3: "₦50,000 - ₦100,000", Month6: "₦80,000 - ₦180,000+"},
				Tools:             []string{"Reliable phone", "Transportation (optional)", "Payment apps"},
				ActionPlan: []string{
					"Week 1: Offer to run errands for busy professionals/students",
					"Week 1: Charge ₦1,000-3,000 per errand (shopping, pickup, drop-off)",
					"Week 2: Build reputation for speed and reliability",
					"Week 3: Get recurring clients who need weekly shopping",
					"Month 2+: Offer packages (5 errands/week = ₦10,000-20,000)",
				},
				TargetClients:     []string{"Busy professionals", "Elderly people", "Students during exams", "New parents"},
				MarketingChannels: []string{"WhatsApp", "Neighbourhood groups", "Church announcements", "Direct outreach"},
			},
		},
	},
}

var businessCategories = []Category{
	{
		Name: "Low Capital Businesses (₦5,000 - ₦50,000)",
		Opportunities: []Opportunity{
			{
				Title:             "Thrift Clothing Resale (Okrika)",
				CapitalNeeded:     "₦10,000 - ₦30,000",
				SkillsNeeded:      []string{"Fashion sense", "Negotiation", "Marketing"},
				TimeToFirstIncome: "1-2 weeks",
				PotentialIncome:   Income{Month1: "₦20,000 - ₦50,000", Month3: "₦60,000 - ₦120,000", Month6: "₦100,000 - ₦200,000+"},
				ActionPlan: []string{
					"Capital: ₦20,000 for initial stock",
					"Week 1: Visit thrift markets, buy quality pieces (₦500-1,500 each)",
					"Week 1: Clean, iron, photograph items professionally",
					"Week 2: List on Instagram/Facebook with good descriptions",
					"Week 2-3: Price at 2-3x cost, negotiate smartly",
					"Month 2+: Reinvest profits, build following, do sales",
				},
				Risks:       []string{"Fashion trends change", "Quality issues", "Competition"},
				SuccessTips: []string{"Focus on quality over quantity", "Good photography is key", "Build trust with customers"},
			},
			{
				Title:             "Phone Accessories Sales",
				CapitalNeeded:     "₦15,000 - ₦40,000",
				SkillsNeeded:      []string{"Product knowledge", "Customer service", "Trend awareness"},
				TimeToFirstIncome: "1 week",
				PotentialIncome:   Income{Month1: "₦15,000 - ₦40,000", Month3: "₦50,000 - ₦100,000", Month6: "₦80,000 - ₦180,000+"},
				ActionPlan: []string{
					"Capital: ₦20,000-30,000 for inventory",
					"Week 1: Source suppliers (Computer Village, online wholesalers)",
					"Week 1: Buy popular items (cases, chargers, earphones, screen protectors)",
					"Week 1-2: Set up Instagram shop with product photos",
					"Ongoing: Sell on campus, online, to friends - 50-100% markup",
					"Month 2+: Expand inventory based on what sells",
				},
				Risks:       []string{"Damage/theft", "Fake products", "Phone model changes"},
				SuccessTips: []string{"Know your target phone models", "Quality over cheap prices", "Offer warranties"},
			},
			{
				Title:             "Snack/Food Business",
				CapitalNeeded:     "₦10,000 - ₦30,000",
				SkillsNeeded:      []string{"Cooking/baking", "Hygiene awareness", "Consistency"},
				TimeToFirstIncome: "3-7 days",
				PotentialIncome:   Income{Month1: "₦20,000 - ₦60,000", Month3: "₦60,000 - ₦150,000", Month6: "₦100,000 - ₦300,000+"},
				ActionPlan: []string{
					"Capital: ₦15,000-25,000 for ingredients and packaging",
					"Week 1: Choose product (chin-chin, cupcakes, small chops, etc.)",
					"Week 1: Test recipe, get feedback, perfect it",
					"Week 1-2: Get NAFDAC-compliant packaging, create brand name",
					"Week 2+: Sell to classmates, in hostels, take pre-orders",
					"Month 2+: Scale production, consider vendors/distributors",
				},
				Risks:       []string{"Food safety", "Spoilage", "Competition"},
				SuccessTips: []string{"Consistency in quality and taste", "Proper packaging", "Word-of-mouth is key"},
			},
		},
	},
	{
		Name: "Medium Capital Businesses (₦50,000 - ₦200,000)",
		Opportunities: []Opportunity{
			{
				Title:             "Dropshipping Business",
				CapitalNeeded:     "₦50,000 - ₦100,000",
				SkillsNeeded:      []string{"Digital marketing", "Customer service", "E-commerce"},
				TimeToFirstIncome: "2-4 weeks",
				PotentialIncome:   Income{Month1: "₦30,000 - ₦80,000", Month3: "₦100,000 - ₦200,000", Month6: "₦200,000 - ₦500,000+"},
				ActionPlan: []string{
					"Capital: ₦50,000-80,000 for ads and initial orders",
					"Week 1: Research trending products, find reliable suppliers",
					"Week 1-2: Create Instagram/Facebook shop, design brand",
					"Week 2-3: Run targeted ads (₦10,000-20,000 budget)",
					"Week 3-4: Process orders, ensure fast delivery",
					"Month 2+: Scale ads, automate processes, expand product line",
				},
				Risks:       []string{"Supplier reliability", "Shipping delays", "Ad costs"},
				SuccessTips: []string{"Test products before scaling", "Excellent customer service", "Fast response times"},
			},
		},
	},
}

// DiscoveryQuestion groups the guided questions used when a student has
// not yet picked a path.
type DiscoveryQuestion struct {
	Topic     string
	Questions []string
}

// DiscoveryQuestions returns the guided-assessment question sets.
func DiscoveryQuestions() []DiscoveryQuestion {
	return []DiscoveryQuestion{
		{
			Topic: "skills",
			Questions: []string{
				"What subjects or activities do you naturally excel at?",
				"What do friends/family often ask you for help with?",
				"What hobbies or interests do you have?",
				"Are you more creative (design, art) or analytical (numbers, logic)?",
				"Do you prefer working with people or independently?",
			},
		},
		{
			Topic: "capital",
			Questions: []string{
				"How much money can you invest to start? (Be realistic)",
				"Do you have any savings you can use?",
				"Can you get financial support from family?",
				"Would you prefer starting with ₦0 or can you invest ₦10k-50k?",
			},
		},
		{
			Topic: "time",
			Questions: []string{
				"How many hours per week can you dedicate to this?",
				"Do you need income immediately or can you wait 2-4 weeks?",
				"Are you looking for part-time or full-time income?",
				"What's your academic schedule like?",
			},
		},
		{
			Topic: "goals",
			Questions: []string{
				"What's your monthly income target?",
				"Why do you want to make money? (Specific needs or general income?)",
				"Do you want quick cash or to build something long-term?",
				"Are you interested in online or offline opportunities?",
			},
		},
	}
}

// CommonProblem maps a frequent student blocker to suggested directions.
type CommonProblem struct {
	Problem   string
	Solutions []string
}

// CommonProblems returns the problem-to-solution shortcuts.
func CommonProblems() []CommonProblem {
	return []CommonProblem{
		{
			Problem: "I have no money to invest",
			Solutions: []string{
				"Freelance services (writing, design, social media)",
				"Online tutoring",
				"Virtual assistant work",
				"Content creation",
			},
		},
		{
			Problem: "I have very little free time due to school",
			Solutions: []string{
				"Freelance gigs (work on your schedule)",
				"Weekend businesses (food, events)",
				"Passive income (digital products once created)",
			},
		},
		{
			Problem: "I don't have any marketable skills",
			Solutions: []string{
				"Learn high-income skills (1-2 months): web design, video editing",
				"Start with easy services: virtual assistant, data entry",
				"Reselling businesses: thrift, accessories",
				"Learn as you earn: offer services while improving",
			},
		},
		{
			Problem: "I need money urgently (this week/month)",
			Solutions: []string{
				"Gig work: TaskRabbit-style services, deliveries",
				"Quick sales: sell unused items, campus services",
				"Immediate services: tutoring, assignment help",
				"Event-based: photography, DJ, catering for parties",
			},
		},
	}
}
