package i18n

var en = map[Key]string{
	CommonSave:    "Save",
	CommonDelete:  "Delete",
	CommonCancel:  "Cancel",
	CommonCreate:  "Create",
	CommonEdit:    "Edit",
	CommonName:    "Name",
	CommonPath:    "Path",
	CommonCommand: "Command",
	CommonApp:     "App",
	CommonQuit:    "Quit",
	CommonBack:    "Back",

	PresetAdd:           "Add Preset",
	PresetEdit:          "Edit Preset",
	PresetDelete:        "Delete Preset",
	PresetDetails:       "Preset Details",
	PresetNameExists:    "Preset name already exists",
	PresetChooseName:    "Please choose a different name",
	PresetSaved:         "Preset saved",
	PresetDeleted:       "Preset deleted",
	PresetSaveFailed:    "Failed to save preset",
	PresetLoadFailed:    "Failed to load presets",
	PresetConfirmDelete: "Delete preset?",
	PresetDeleteMessage: "Are you sure you want to delete %q?",
	PresetDeleteFailed:  "Failed to delete preset",
	PresetUpdated:       "Preset updated",
	PresetUpdateFailed:  "Failed to update preset",
	PresetNone:          "No presets",
	PresetAddFirst:      "Add your first preset to get started",
	PresetSearch:        "Search presets...",
	PresetNoCommand:     "No init command",
	PresetManage:        "Manage Presets",

	ProjectCreate:       "Create Project",
	ProjectName:         "Project Name",
	ProjectCreated:      "Project created",
	ProjectFailed:       "Failed to create project",
	ProjectNoPreset:     "No preset selected",
	ProjectNeedName:     "Please enter a project name",
	ProjectNoBaseFolder: "The preset has no base folder",
	ProjectCreating:     "Creating project...",
	ProjectSelectPreset: "Select Preset",
	ProjectFolderFailed: "Could not create project folder",
	ProjectInitFailed:   "Init command failed",
	ProjectLaunchFailed: "Could not open editor",

	FormPresetName:     "Preset Name",
	FormBaseFolder:     "Base Folder",
	FormIDEApp:         "IDE App",
	FormInitCommand:    "Init Command",
	FormFillAll:        "Please fill in all required fields",
	FormNameRequired:   "Please enter a preset name",
	FormFolderRequired: "Please select a base folder",
	FormAppRequired:    "Please select an app",
}

var zhCN = map[Key]string{
	CommonSave:    "保存",
	CommonDelete:  "删除",
	CommonCancel:  "取消",
	CommonCreate:  "创建",
	CommonEdit:    "编辑",
	CommonName:    "名称",
	CommonPath:    "路径",
	CommonCommand: "命令",
	CommonApp:     "应用",
	CommonQuit:    "退出",
	CommonBack:    "返回",

	PresetAdd:           "添加预设",
	PresetEdit:          "编辑预设",
	PresetDelete:        "删除预设",
	PresetDetails:       "预设详情",
	PresetNameExists:    "预设名称已存在",
	PresetChooseName:    "请使用其他名称",
	PresetSaved:         "预设已保存",
	PresetDeleted:       "预设已删除",
	PresetSaveFailed:    "保存预设失败",
	PresetLoadFailed:    "加载预设失败",
	PresetConfirmDelete: "删除预设？",
	PresetDeleteMessage: "确定要删除 %q 吗？",
	PresetDeleteFailed:  "删除预设失败",
	PresetUpdated:       "预设已更新",
	PresetUpdateFailed:  "更新预设失败",
	PresetNone:          "暂无预设",
	PresetAddFirst:      "添加第一个预设以开始使用",
	PresetSearch:        "搜索预设...",
	PresetNoCommand:     "无初始化命令",
	PresetManage:        "管理预设",

	ProjectCreate:       "创建项目",
	ProjectName:         "项目名称",
	ProjectCreated:      "项目已创建",
	ProjectFailed:       "创建项目失败",
	ProjectNoPreset:     "未选择预设",
	ProjectNeedName:     "请输入项目名称",
	ProjectNoBaseFolder: "该预设没有基础文件夹",
	ProjectCreating:     "正在创建项目...",
	ProjectSelectPreset: "选择预设",
	ProjectFolderFailed: "无法创建项目文件夹",
	ProjectInitFailed:   "初始化命令失败",
	ProjectLaunchFailed: "无法打开编辑器",

	FormPresetName:     "预设名称",
	FormBaseFolder:     "基础文件夹",
	FormIDEApp:         "IDE 应用",
	FormInitCommand:    "初始化命令",
	FormFillAll:        "请填写所有必填项",
	FormNameRequired:   "请输入预设名称",
	FormFolderRequired: "请选择基础文件夹",
	FormAppRequired:    "请选择应用",
}
