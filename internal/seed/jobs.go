// Package seed holds the fixed job dataset used to seed the jobs table and to
// back the client's local mode.
package seed

import "go-jobboard-backend/internal/domain"

var jobTypes = []string{"焊工", "铆工", "建筑工"}

var locations = []string{"北京", "上海", "广州", "深圳", "成都", "杭州", "重庆", "武汉", "雄安", "天津"}

var jobs = []domain.Job{
	{
		ID:            "1",
		Title:         "建筑结构工",
		Company:       "中国建筑第八工程局",
		Location:      "北京",
		Salary:        "300-450元/天",
		Type:          "建筑工",
		Description:   "负责大型商业综合体项目的主体结构施工，要求熟悉图纸，有高层建筑经验者优先。提供五险一金和住宿。",
		Duration:      "90天",
		WorkingPeriod: domain.StringPtr("7月-9月"),
		ContactPhone:  domain.StringPtr("13812345678"),
	},
	{
		ID:           "2",
		Title:        "高级电焊工（TIG/MIG）",
		Company:      "上海船舶制造厂",
		Location:     "上海",
		Salary:       "400-600元/天",
		Type:         "焊工",
		Description:  "需要持有6G焊工证，精通TIG和MIG焊接工艺，负责船舶关键部件的焊接。有压力容器焊接经验者优先。",
		Duration:     "长期",
		ContactPhone: domain.StringPtr("13987654321"),
	},
	{
		ID:            "3",
		Title:         "桥梁铆工",
		Company:       "中铁大桥局集团",
		Location:      "武汉",
		Salary:        "350-550元/天",
		Type:          "铆工",
		Description:   "参与长江大桥的钢结构铆接工作，要求熟练使用风动铆钉枪，能够高空作业，身体素质好。",
		Duration:      "180天",
		WorkingPeriod: domain.StringPtr("6月-11月"),
		ContactPhone:  domain.StringPtr("13711223344"),
	},
	{
		ID:            "4",
		Title:         "幕墙安装工",
		Company:       "深圳金粤幕墙",
		Location:      "深圳",
		Salary:        "330-500元/天",
		Type:          "建筑工",
		Description:   "负责超高层写字楼的玻璃幕墙和金属板幕墙安装，需要有相关高空作业证件和经验。",
		Duration:      "120天",
		WorkingPeriod: domain.StringPtr("8月-12月"),
		ContactPhone:  domain.StringPtr("13655667788"),
	},
	{
		ID:           "5",
		Title:        "钢结构详图深化设计师",
		Company:      "中建钢构",
		Location:     "成都",
		Salary:       "280-430元/天",
		Type:         "建筑工",
		Description:  "此职位更偏向技术岗，要求建筑工背景。负责将设计蓝图转化为详细的、可施工的钢结构制造和安装图纸。",
		Duration:     "长期",
		ContactPhone: domain.StringPtr("13599887766"),
	},
	{
		ID:           "6",
		Title:        "管道焊工（天然气项目）",
		Company:      "中国石油天然气管道工程有限公司",
		Location:     "雄安",
		Salary:       "450-650元/天",
		Type:         "焊工",
		Description:  "负责国家级天然气管道项目的焊接工作，要求有下向焊和全自动焊经验，能适应野外作业环境。",
		Duration:     "2-3年",
		ContactPhone: domain.StringPtr("18610102020"),
	},
}

// Jobs returns a fresh copy of the dataset. Seeds carry no creation time;
// whoever stores them assigns one.
func Jobs() []domain.Job {
	out := make([]domain.Job, len(jobs))
	copy(out, jobs)
	return out
}

func JobTypes() []string {
	return append([]string(nil), jobTypes...)
}

func Locations() []string {
	return append([]string(nil), locations...)
}
