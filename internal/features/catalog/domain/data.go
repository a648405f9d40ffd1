package domain

import "sync"

var defaultPurposes = []Purpose{
	{ID: "dashboard", Title: "数据仪表盘", Icon: "📊", Description: "用于数据可视化、分析和后台管理的复杂界面。"},
	{ID: "landing", Title: "营销落地页", Icon: "🚀", Description: "高转化率的产品介绍页面，强调视觉冲击力。"},
	{ID: "ecommerce", Title: "电商平台", Icon: "🛍️", Description: "商品展示、购物车和结账流程。"},
	{ID: "saas", Title: "SaaS 应用", Icon: "💻", Description: "功能丰富的网络应用程序界面。"},
	{ID: "mobile", Title: "移动端 App", Icon: "📱", Description: "iOS/Android 原生应用界面设计。"},
	{ID: "portfolio", Title: "个人作品集", Icon: "🎨", Description: "展示创意作品和个人简历的简约页面。"},
	{ID: "blog", Title: "内容博客", Icon: "📝", Description: "注重阅读体验的文章列表和详情页。"},
	{ID: "settings", Title: "设置中心", Icon: "⚙️", Description: "复杂的配置选项、表单和用户资料管理。"},
}

var defaultStyles = []Style{
	{ID: "apple", Title: "Modern Apple", Description: "极致简约，大量留白，模糊半透明效果，完美的圆角和阴影。", AccentColor: "#007AFF"},
	{ID: "fluent2", Title: "Fluent 2 Design", Description: "微软最新设计语言，强调光影、材质和动效，通过圆角、阴影和半透明效果营造友好、现代且有深度的界面。", AccentColor: "#0078D4"},
	{ID: "glassmorphism", Title: "玻璃拟态 (Glassmorphism)", Description: "通过背景模糊、半透明和细腻边框创造层次感，效果轻盈通透，常见于Apple和微软的设计中。", AccentColor: "#14B8A6"},
	{ID: "material", Title: "Material V3", Description: "Google设计语言，动态色彩，高对比度，卡片式布局。", AccentColor: "#6750A4"},
	{ID: "neumorphism", Title: "新拟物主义 (Neumorphism)", Description: "通过柔和的内外阴影，让UI元素仿佛从背景中浮出或凹陷，营造出柔软、简约、一体化的质感。", AccentColor: "#E0E5EC"},
	{ID: "minimal", Title: "极致极简", Description: "黑白为主，极少的装饰元素，强调排版和内容本身。", AccentColor: "#000000"},
	{ID: "brutalist", Title: "新粗野主义", Description: "大胆的边框，高饱和度色彩，复古且不拘一格的排版。", AccentColor: "#FF5722"},
	{ID: "corporate", Title: "专业商务", Description: "稳重、值得信赖的蓝色系，传统的布局，信息密度较高。", AccentColor: "#0A66C2"},
	{ID: "playful", Title: "活泼趣味", Description: "圆润的字体，鲜艳的色彩，丰富的微交互和插画元素。", AccentColor: "#FFC107"},
}

var defaultCategories = []Category{
	{
		Name:  "导航",
		Icon:  "🧭",
		Color: "#007AFF",
		Components: []Component{
			{ID: "navbar", Name: "导航栏", Description: "标准水平导航，包含Logo和主菜单"},
			{ID: "sidebar", Name: "侧边栏", Description: "垂直折叠菜单，适合复杂后台系统"},
			{ID: "breadcrumb", Name: "面包屑导航", Description: "显示当前页面路径层级"},
			{ID: "tabs", Name: "选项卡", Description: "同级内容之间的快速切换"},
			{ID: "menu", Name: "下拉菜单", Description: "多级下拉导航菜单"},
			{ID: "pagination", Name: "分页", Description: "分页导航控件"},
			{ID: "steps", Name: "步骤条", Description: "显示流程步骤进度"},
			{ID: "affix", Name: "回到顶部", Description: "固定位置返回顶部按钮"},
		},
	},
	{
		Name:  "表单",
		Icon:  "📝",
		Color: "#34C759",
		Components: []Component{
			{ID: "input", Name: "文本输入", Description: "单行文本输入框"},
			{ID: "textarea", Name: "多行输入", Description: "多行文本输入区域"},
			{ID: "select", Name: "下拉选择", Description: "单选下拉选择器"},
			{ID: "multiselect", Name: "多选", Description: "多选下拉选择器"},
			{ID: "checkbox", Name: "复选框", Description: "多项选择控件"},
			{ID: "radio", Name: "单选框", Description: "单选项选择控件"},
			{ID: "switch", Name: "开关", Description: "开关切换控件"},
			{ID: "slider", Name: "滑块", Description: "范围选择滑块"},
			{ID: "datepicker", Name: "日期选择", Description: "日期选择器"},
			{ID: "daterange", Name: "日期范围", Description: "日期范围选择器"},
			{ID: "timepicker", Name: "时间选择", Description: "时间选择器"},
			{ID: "upload", Name: "文件上传", Description: "文件上传组件"},
			{ID: "cascader", Name: "级联选择", Description: "多级联动选择器"},
			{ID: "rate", Name: "评分", Description: "星级评分控件"},
			{ID: "transfer", Name: "穿梭框", Description: "双向选择组件"},
			{ID: "autocomplete", Name: "自动完成", Description: "带自动补全的输入框"},
		},
	},
	{
		Name:  "数据展示",
		Icon:  "📊",
		Color: "#FF9500",
		Components: []Component{
			{ID: "table", Name: "数据表格", Description: "带排序、筛选功能的表格"},
			{ID: "list", Name: "列表", Description: "垂直排列的信息列表"},
			{ID: "card", Name: "卡片", Description: "内容卡片容器"},
			{ID: "badge", Name: "徽章", Description: "状态或数量徽章"},
			{ID: "tag", Name: "标签", Description: "分类标签"},
			{ID: "progress", Name: "进度条", Description: "进度指示器"},
			{ID: "avatar", Name: "头像", Description: "用户头像展示"},
			{ID: "statistic", Name: "统计数字", Description: "数据统计展示"},
			{ID: "descriptions", Name: "描述列表", Description: "成对展示描述信息"},
			{ID: "timeline", Name: "时间轴", Description: "时间线展示"},
			{ID: "tree", Name: "树形控件", Description: "树形结构展示"},
		},
	},
	{
		Name:  "反馈",
		Icon:  "💬",
		Color: "#AF52DE",
		Components: []Component{
			{ID: "alert", Name: "警告框", Description: "重要提示信息"},
			{ID: "modal", Name: "模态框", Description: "弹窗对话框"},
			{ID: "tooltip", Name: "提示", Description: "悬停提示信息"},
			{ID: "toast", Name: "通知", Description: "全局通知提示"},
			{ID: "skeleton", Name: "骨架屏", Description: "加载占位动画"},
			{ID: "spinner", Name: "加载", Description: "加载中动画"},
			{ID: "result", Name: "结果页", Description: "操作结果展示"},
			{ID: "empty", Name: "空状态", Description: "无数据占位页"},
			{ID: "confirm", Name: "确认框", Description: "确认操作对话框"},
		},
	},
	{
		Name:  "布局",
		Icon:  "📐",
		Color: "#32ADE6",
		Components: []Component{
			{ID: "grid", Name: "栅格", Description: "响应式栅格布局"},
			{ID: "flex", Name: "弹性布局", Description: "Flexbox弹性盒子"},
			{ID: "container", Name: "容器", Description: "内容容器"},
			{ID: "divider", Name: "分割线", Description: "内容分割线"},
			{ID: "space", Name: "间距", Description: "调整元素间距"},
			{ID: "layout", Name: "布局", Description: "页面整体布局"},
			{ID: "col", Name: "列", Description: "栅格列组件"},
			{ID: "row", Name: "行", Description: "栅格行组件"},
		},
	},
	{
		Name:  "内容",
		Icon:  "📄",
		Color: "#FF2D55",
		Components: []Component{
			{ID: "typography", Name: "排版", Description: "文字排版样式"},
			{ID: "quote", Name: "引用", Description: "引用文本块"},
			{ID: "code", Name: "代码", Description: "代码展示块"},
			{ID: "image", Name: "图片", Description: "图片展示组件"},
			{ID: "video", Name: "视频", Description: "视频播放器"},
			{ID: "audio", Name: "音频", Description: "音频播放器"},
		},
	},
	{
		Name:  "图表",
		Icon:  "📈",
		Color: "#5AC8FA",
		Components: []Component{
			{ID: "line-chart", Name: "折线图", Description: "趋势折线图表"},
			{ID: "bar-chart", Name: "柱状图", Description: "对比柱状图表"},
			{ID: "pie-chart", Name: "饼图", Description: "占比饼图"},
			{ID: "area-chart", Name: "面积图", Description: "区域面积图"},
			{ID: "scatter-chart", Name: "散点图", Description: "分布散点图"},
			{ID: "radar-chart", Name: "雷达图", Description: "多维雷达图"},
			{ID: "gauge-chart", Name: "仪表盘", Description: "仪表盘图表"},
			{ID: "heatmap", Name: "热力图", Description: "数据热力图"},
		},
	},
	{
		Name:  "导航菜单",
		Icon:  "☰",
		Color: "#30D158",
		Components: []Component{
			{ID: "dropdown", Name: "下拉菜单", Description: "下拉列表菜单"},
			{ID: "contextmenu", Name: "右键菜单", Description: "右键上下文菜单"},
			{ID: "menu-button", Name: "菜单按钮", Description: "带菜单的按钮"},
			{ID: "mega-menu", Name: "巨菜单", Description: "大型导航菜单"},
		},
	},
	{
		Name:  "数据输入",
		Icon:  "⌨️",
		Color: "#FF9F0A",
		Components: []Component{
			{ID: "input-number", Name: "数字输入", Description: "数字专用输入框"},
			{ID: "input-password", Name: "密码输入", Description: "密码输入框"},
			{ID: "input-search", Name: "搜索输入", Description: "带搜索按钮的输入框"},
			{ID: "input-group", Name: "输入组合", Description: "输入框组合控件"},
			{ID: "input-size", Name: "大中小输入框", Description: "不同尺寸输入框"},
			{ID: "search-table", Name: "搜索表格", Description: "带搜索的表格"},
		},
	},
	{
		Name:  "展示",
		Icon:  "🖼️",
		Color: "#BF5AF2",
		Components: []Component{
			{ID: "image-preview", Name: "图片预览", Description: "图片预览组件"},
			{ID: "image-carousel", Name: "图片轮播", Description: "图片轮播组件"},
			{ID: "avatar-list", Name: "头像列表", Description: "头像组展示"},
			{ID: "preview", Name: "文件预览", Description: "文件预览组件"},
			{ID: "gallery", Name: "图片画廊", Description: "图片画廊展示"},
		},
	},
	{
		Name:  "反馈状态",
		Icon:  "ℹ️",
		Color: "#64D2FF",
		Components: []Component{
			{ID: "message", Name: "消息提示", Description: "页面内消息提示"},
			{ID: "notification", Name: "通知提醒", Description: "系统通知提醒"},
			{ID: "popover", Name: "气泡卡片", Description: "弹出气泡卡片"},
			{ID: "popconfirm", Name: "气泡确认", Description: "弹出确认框"},
			{ID: "popselect", Name: "气泡选择", Description: "弹出选择器"},
		},
	},
	{
		Name:  "高级数据",
		Icon:  "🎯",
		Color: "#FF375F",
		Components: []Component{
			{ID: "tree-select", Name: "树形选择", Description: "树形结构选择器"},
			{ID: "tree-table", Name: "树表格", Description: "树形结构表格"},
			{ID: "drag-sort", Name: "拖拽排序", Description: "拖拽排序组件"},
			{ID: "resizable", Name: "可调整大小", Description: "可调整列宽的表格"},
			{ID: "fixed-columns", Name: "固定列", Description: "固定列的表格"},
		},
	},
	{
		Name:  "业务组件",
		Icon:  "💼",
		Color: "#FFD60A",
		Components: []Component{
			{ID: "transfer-business", Name: "穿梭框", Description: "双向选择组件"},
			{ID: "tour", Name: "引导", Description: "产品功能引导"},
			{ID: "watermark", Name: "水印", Description: "页面水印"},
			{ID: "anchor-nav", Name: "锚点", Description: "页面锚点定位"},
		},
	},
	{
		Name:  "通用",
		Icon:  "🔧",
		Color: "#64D2FF",
		Components: []Component{
			{ID: "button", Name: "按钮", Description: "多种样式的按钮"},
			{ID: "icon", Name: "图标", Description: "SVG图标组件"},
			{ID: "link", Name: "链接", Description: "文字链接"},
			{ID: "text", Name: "文本", Description: "纯文本展示"},
			{ID: "paragraph", Name: "段落", Description: "文本段落"},
			{ID: "title", Name: "标题", Description: "多级标题"},
		},
	},
	{
		Name:  "实验性",
		Icon:  "🧪",
		Color: "#BF5AF2",
		Components: []Component{
			{ID: "color-picker", Name: "颜色选择器", Description: "颜色选择组件"},
			{ID: "cropper", Name: "图片裁剪", Description: "图片裁剪组件"},
			{ID: "flowchart", Name: "流程图", Description: "可视化流程图"},
			{ID: "mentions", Name: "提及", Description: "@提及组件"},
			{ID: "password-strength", Name: "密码强度", Description: "密码强度检测"},
		},
	},
	{
		Name:  "移动端专用",
		Icon:  "📱",
		Color: "#30D158",
		Components: []Component{
			{ID: "bottom-nav", Name: "底部导航", Description: "移动端底部导航栏"},
			{ID: "swipe-action", Name: "滑动操作", Description: "滑动删除/收藏"},
			{ID: "pull-refresh", Name: "下拉刷新", Description: "下拉刷新组件"},
			{ID: "action-sheet", Name: "操作面板", Description: "底部弹出操作面板"},
			{ID: "floating-button", Name: "悬浮按钮", Description: "移动端悬浮按钮"},
			{ID: "safe-area", Name: "安全区域", Description: "适配刘海屏安全区域"},
		},
	},
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. It panics if the built-in data
// violates the id uniqueness rules, which would be a programming error.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewCatalog(defaultPurposes, defaultStyles, defaultCategories)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
