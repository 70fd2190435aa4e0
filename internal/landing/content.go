package landing

type Stat struct {
	Value string
	Label string
}

type Feature struct {
	Title       string
	Description string
}

type Step struct {
	Number      string
	Title       string
	Description string
}

type Plan struct {
	Name        string
	Price       string
	Period      string
	Description string
	Features    []string
	CTA         string
	Popular     bool
}

type Testimonial struct {
	Name   string
	Role   string
	Avatar string
	Rating int
	Quote  string
}

type Link struct {
	Name string
	Href string
}

type LinkGroup struct {
	Title string
	Links []Link
}

var HeroStats = []Stat{
	{Value: "10K+", Label: "Content Creators"},
	{Value: "2M+", Label: "Clips Generated"},
	{Value: "300%", Label: "Engagement Boost"},
	{Value: "90%", Label: "Time Saved"},
}

var HeroHighlights = []string{
	"AI-Powered Clip Extraction",
	"3 Smart Splice Modes",
	"Social Media Optimized",
	"Auto-Generated Hooks",
}

var Features = []Feature{
	{"AI-Powered Analysis", "MiniMax-M2 analyzes your videos to identify the most engaging moments with attention scoring and content understanding."},
	{"Smart Clip Extraction", "Automatically extract viral-worthy clips based on engagement signals, sentiment analysis, and trending patterns."},
	{"Split-Screen Magic", "Create stunning split-screen compositions that combine your best clips into attention-grabbing shorts."},
	{"3 Generation Modes", "Semantic (thematic), Eclectic (variety), or Trending (viral potential) - choose your creative direction."},
	{"Platform Optimization", "Export perfectly formatted videos for TikTok, YouTube Shorts, and Instagram Reels with one click."},
	{"Lightning Fast", "Process hours of footage in minutes. AI-powered workflows deliver professional results at unprecedented speed."},
	{"Virality Scoring", "Each clip gets engagement, attention, and virality scores to help you pick winners every time."},
	{"Auto Captions & Tags", "AI-generated captions, hashtags, and descriptions tailored for each platform to maximize reach."},
}

var Steps = []Step{
	{"01", "Upload Your Video", "Drag and drop your long-form content or paste a YouTube URL. Supports all major video formats."},
	{"02", "AI Analysis", "MiniMax-M2 analyzes attention patterns, engagement signals, and viral potential across your entire video."},
	{"03", "Generate Splices", "Choose Semantic, Eclectic, or Trending mode. AI selects and combines the best clips into split-screen shorts."},
	{"04", "Export & Share", "Download platform-optimized videos with auto-generated captions and hashtags. Ready to go viral!"},
}

var StepStats = []Stat{
	{Value: "< 5 min", Label: "Average Processing Time"},
	{Value: "90%", Label: "Time Saved vs Manual"},
	{Value: "3x", Label: "Engagement Increase"},
}

var Plans = []Plan{
	{
		Name:        "Free",
		Price:       "0",
		Period:      "forever",
		Description: "Perfect for trying out ClipSmart",
		Features: []string{
			"10 videos per month",
			"AI-powered clip extraction",
			"Basic splice generation",
			"720p exports",
			"Standard processing",
			"Community support",
		},
		CTA: "Get Started",
	},
	{
		Name:        "Pro",
		Price:       "29",
		Period:      "month",
		Description: "For serious content creators",
		Features: []string{
			"100 videos per month",
			"Advanced AI analysis",
			"All 3 splice modes",
			"1080p & 4K exports",
			"Priority processing",
			"Custom watermarks",
			"Platform optimization",
			"Analytics dashboard",
			"Priority support",
		},
		CTA:     "Start Pro Trial",
		Popular: true,
	},
	{
		Name:        "Enterprise",
		Price:       PriceCustom,
		Description: "For teams and agencies",
		Features: []string{
			"Unlimited videos",
			"White-label exports",
			"Team collaboration",
			"API access",
			"Custom AI training",
			"Dedicated account manager",
			"SLA guarantee",
			"Advanced analytics",
			"24/7 premium support",
		},
		CTA: "Contact Sales",
	},
}

var Testimonials = []Testimonial{
	{"Sarah Chen", "Content Creator", "👩‍💼", 5, "ClipSmart cut my editing time by 90%. I went from spending 6 hours on a video to just 30 minutes. The AI knows exactly which moments will go viral."},
	{"Marcus Rodriguez", "YouTube Creator", "👨‍🎨", 5, "The attention scoring is insane. My shorts now consistently hit 1M+ views. ClipSmart understands engagement better than I do."},
	{"Emily Watson", "Social Media Manager", "👩‍💻", 5, "Managing 5 clients used to be overwhelming. Now I can turn one podcast into 20 viral shorts in minutes. This is a game-changer for agencies."},
	{"David Kim", "Podcast Host", "👨‍🚀", 5, "The semantic mode is perfect for educational content. It finds clips that flow together naturally. My audience retention went up 3x."},
	{"Lisa Anderson", "Brand Strategist", "👩‍🔬", 5, "ROI on ClipSmart is incredible. We're getting 10x more engagement with half the production costs. The auto-captions alone save hours."},
	{"James Foster", "Video Editor", "👨‍🎤", 5, "As a professional editor, I was skeptical. But the AI's clip selection is better than most human editors. I use it for all my clients now."},
}

var TestimonialStats = []Stat{
	{Value: "10K+", Label: "Active Users"},
	{Value: "2M+", Label: "Clips Generated"},
	{Value: "4.9/5", Label: "Average Rating"},
	{Value: "98%", Label: "Would Recommend"},
}

var CTAHighlights = []string{
	"No credit card required",
	"10 free videos",
	"Cancel anytime",
}

var CTAStats = []Stat{
	{Value: "10K+", Label: "Active Creators"},
	{Value: "2M+", Label: "Clips Generated"},
	{Value: "4.9/5", Label: "User Rating"},
	{Value: "90%", Label: "Time Saved"},
}

var NavLinks = []Link{
	{Name: "Features", Href: "#features"},
	{Name: "How It Works", Href: "#how-it-works"},
	{Name: "Pricing", Href: "#pricing"},
	{Name: "Testimonials", Href: "#testimonials"},
}

var FooterGroups = []LinkGroup{
	{Title: "Product", Links: []Link{
		{Name: "Features", Href: "#features"},
		{Name: "How It Works", Href: "#how-it-works"},
		{Name: "Pricing", Href: "#pricing"},
		{Name: "API Documentation", Href: "/docs"},
	}},
	{Title: "Company", Links: []Link{
		{Name: "About Us", Href: "/about"},
		{Name: "Blog", Href: "/blog"},
		{Name: "Careers", Href: "/careers"},
		{Name: "Press Kit", Href: "/press"},
	}},
	{Title: "Support", Links: []Link{
		{Name: "Help Center", Href: "/help"},
		{Name: "Contact Support", Href: "/support"},
		{Name: "Status", Href: "/status"},
		{Name: "Community", Href: "/community"},
	}},
	{Title: "Legal", Links: []Link{
		{Name: "Privacy Policy", Href: "/privacy"},
		{Name: "Terms of Service", Href: "/terms"},
		{Name: "Cookie Policy", Href: "/cookies"},
		{Name: "GDPR", Href: "/gdpr"},
	}},
}
